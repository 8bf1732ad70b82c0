package dynamic

import (
	"github.com/animiral/wudcrgen/fundament"
	"github.com/animiral/wudcrgen/geometry"
	"github.com/animiral/wudcrgen/lobster"
)

// reachableEventually blocks every cell in base that cannot possibly
// matter to finishing the embedding from here: cells only reachable by
// placements further away than the remaining disks could ever travel.
// Two fundaments that differ only in such far-away cells describe
// equivalent problems, so normalising them this way lets the dominance
// check in the problem queue recognise that equivalence.
func reachableEventually(base fundament.Fundament, head geometry.Coord, disks []lobster.Disk, position int) fundament.Fundament {
	leafReach := fundament.All()
	if position < len(disks) && disks[position].Depth == lobster.Leaf {
		leafReach = base.Reachable(head, 1)
		for position < len(disks) && disks[position].Depth >= lobster.Leaf {
			position++
		}
	}

	extReach := fundament.All()
	spinePlaces := fundament.All().Unblock(geometry.Coord{})

	for position < len(disks) && spinePlaces.PopCount() < 25 {
		reach := 0
		for position < len(disks) && disks[position].Depth != lobster.Spine {
			if int(disks[position].Depth) > reach {
				reach = int(disks[position].Depth)
			}
			position++
		}

		for bit := 0; bit < 25; bit++ {
			if !spinePlaces.Test(bit) {
				extReach &= base.Reachable(fundament.At(bit), reach)
			}
		}

		nextSpinePlaces := fundament.All()
		for bit := 0; bit < 25; bit++ {
			if !spinePlaces.Test(bit) {
				nextSpinePlaces &= base.ReachableBySpine(fundament.At(bit))
			}
		}

		extReach &= nextSpinePlaces
		spinePlaces = nextSpinePlaces

		if position < len(disks) {
			position++
		}
	}

	return leafReach & extReach
}
