package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/animiral/wudcrgen/classify"
	"github.com/animiral/wudcrgen/config"
	"github.com/animiral/wudcrgen/dynamic"
	"github.com/animiral/wudcrgen/heuristic"
	"github.com/animiral/wudcrgen/input"
	"github.com/animiral/wudcrgen/lobster"
	"github.com/animiral/wudcrgen/render"
	"github.com/animiral/wudcrgen/stats"
)

var (
	inputPath    string
	degreesMode  bool
	algorithmArg string
	orderArg     string
	gap          int
	outPath      string
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "classify an input graph and embed it on the triangular lattice",
	RunE:  runEmbed,
}

func init() {
	embedCmd.Flags().StringVar(&inputPath, "input", "", "path to an edge list (or degree list with --degrees)")
	embedCmd.Flags().BoolVar(&degreesMode, "degrees", false, "treat --input as a caterpillar degree list instead of an edge list")
	embedCmd.Flags().StringVar(&algorithmArg, "algorithm", "dynamic", "embedding algorithm: dynamic, knp, cleve, benchmark")
	embedCmd.Flags().StringVar(&orderArg, "order", "depth-first", "embed order: depth-first or breadth-first")
	embedCmd.Flags().IntVar(&gap, "gap", 0, "extra spacing between disks for heuristic algorithms")
	embedCmd.Flags().StringVar(&outPath, "out", "", "write an SVG rendering of the result to this path")
	_ = embedCmd.MarkFlagRequired("input")
}

func parseAlgorithm(s string) (config.Algorithm, error) {
	switch s {
	case "dynamic":
		return config.DynamicProgram, nil
	case "knp":
		return config.KlemzNoellenburgPrutkin, nil
	case "cleve":
		return config.Cleve, nil
	case "benchmark":
		return config.Benchmark, nil
	default:
		return 0, fmt.Errorf("embed: --algorithm %q: %w", s, config.ErrUnknownAlgorithm)
	}
}

func parseOrder(s string) (config.EmbedOrder, error) {
	switch s {
	case "depth-first", "":
		return config.DepthFirst, nil
	case "breadth-first":
		return config.BreadthFirst, nil
	default:
		return 0, fmt.Errorf("embed: --order %q: %w", s, config.ErrUnknownEmbedOrder)
	}
}

func readGraph(path string, degrees bool) (*lobster.DiskGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("embed: open %s: %w", path, err)
	}
	defer f.Close()

	var edges classify.EdgeList
	if degrees {
		d, err := input.ParseDegreeList(f)
		if err != nil {
			return nil, fmt.Errorf("embed: parse degrees: %w", err)
		}
		edges, err = input.DegreesToCaterpillar(d)
		if err != nil {
			return nil, fmt.Errorf("embed: degrees to caterpillar: %w", err)
		}
	} else {
		var err error
		edges, err = input.ParseEdgeList(f)
		if err != nil {
			return nil, fmt.Errorf("embed: parse edges: %w", err)
		}
	}

	graph, class, err := classify.Classify(edges)
	if err != nil {
		return nil, fmt.Errorf("embed: classify: %w", err)
	}
	log.Debug().Stringer("class", class).Int("size", graph.Size()).Msg("classified input")

	return graph, nil
}

func runEmbed(cmd *cobra.Command, args []string) error {
	algorithm, err := parseAlgorithm(algorithmArg)
	if err != nil {
		return err
	}
	order, err := parseOrder(orderArg)
	if err != nil {
		return err
	}

	cfg := config.Configuration{
		Algorithm:    algorithm,
		EmbedOrder:   order,
		Gap:          gap,
		Constructive: true,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("embed: %w", err)
	}

	graph, err := readGraph(inputPath, degreesMode)
	if err != nil {
		return err
	}

	var stat stats.Stat
	var embedErr error
	switch cfg.Algorithm {
	case config.DynamicProgram:
		stat = stats.Collect(cfg, graph, func() bool {
			ok, err := dynamic.EmbedDynamic(graph, cfg.Constructive)
			embedErr = err
			return ok
		})
	case config.Benchmark:
		// Run every implemented algorithm over the same input and report
		// comparative stats: dynamic.EmbedDynamic (the exact search) next
		// to heuristic.Greedy (the comparator baseline), each on its own
		// clone of graph so neither run's placements clobber the other's.
		dynGraph := cloneGraph(graph)
		greedyGraph := cloneGraph(graph)

		dynCfg := cfg
		dynCfg.Algorithm = config.DynamicProgram
		dynStat := stats.Collect(dynCfg, dynGraph, func() bool {
			ok, err := dynamic.EmbedDynamic(dynGraph, true)
			embedErr = err
			return ok
		})
		greedyStat := stats.Collect(cfg, greedyGraph, func() bool {
			return heuristic.Greedy{}.Embed(greedyGraph)
		})

		log.Info().
			Bool("dynamic_success", dynStat.Success).
			Int64("dynamic_duration_us", dynStat.DurationMicroseconds).
			Bool("greedy_success", greedyStat.Success).
			Int64("greedy_duration_us", greedyStat.DurationMicroseconds).
			Msg("benchmark comparison")

		stat = dynStat
		graph = dynGraph
	default:
		return fmt.Errorf("embed: --algorithm %q: %w", algorithmArg, config.ErrUnsupportedAlgorithm)
	}
	if embedErr != nil {
		return fmt.Errorf("embed: %w", embedErr)
	}

	log.Info().
		Stringer("algorithm", stat.Algorithm).
		Stringer("order", stat.EmbedOrder).
		Int("size", stat.Size).
		Int("spines", stat.Spines).
		Bool("success", stat.Success).
		Int64("duration_us", stat.DurationMicroseconds).
		Msg("embedding complete")

	if outPath != "" {
		if !stat.Success {
			return errors.New("embed: cannot render --out, no embedding was found")
		}
		if err := writeSVG(graph, outPath); err != nil {
			return err
		}
	}

	if !stat.Success {
		return errors.New("embed: no embedding was found")
	}
	return nil
}

// cloneGraph copies g's disks into a fresh DiskGraph so an embedder can
// mutate its copy without disturbing another run over the same input.
func cloneGraph(g *lobster.DiskGraph) *lobster.DiskGraph {
	return lobster.NewDiskGraph(append([]lobster.Disk(nil), g.Disks()...), g.Tip())
}

func writeSVG(graph *lobster.DiskGraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("embed: create %s: %w", path, err)
	}
	defer f.Close()

	var renderer render.Renderer = render.NewSVG()
	if err := renderer.Render(f, graph); err != nil {
		return fmt.Errorf("embed: render: %w", err)
	}
	return nil
}
