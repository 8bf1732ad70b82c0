package generator

// Option customizes RandomLobster by mutating a genConfig before any
// vertex is drawn. Later options override earlier ones.
type Option func(*genConfig)

// genConfig holds the resolved knobs for one RandomLobster call.
type genConfig struct {
	maxBranchesPerSpine int
	maxLeavesPerBranch  int
}

// defaultGenConfig mirrors the original project's per-slot cap of five:
// each spine vertex carries at most five branches, each branch at most
// five leaves, the same bound enumerate.cpp iterated up to.
func defaultGenConfig() *genConfig {
	return &genConfig{
		maxBranchesPerSpine: 5,
		maxLeavesPerBranch:  5,
	}
}

// WithMaxBranchesPerSpine bounds how many branch disks a generated spine
// vertex may carry. Values above 5 are accepted but will rarely embed,
// since a spine disk's fundament has only five free neighbours.
func WithMaxBranchesPerSpine(n int) Option {
	return func(c *genConfig) {
		if n >= 0 {
			c.maxBranchesPerSpine = n
		}
	}
}

// WithMaxLeavesPerBranch bounds how many leaf disks a generated branch
// disk may carry.
func WithMaxLeavesPerBranch(n int) Option {
	return func(c *genConfig) {
		if n >= 0 {
			c.maxLeavesPerBranch = n
		}
	}
}
