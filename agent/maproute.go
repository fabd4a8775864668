package agent

import "spirebot/spire"

// chooseMapNode resolves the map screen. With MapPreferenceFirst it
// simply takes the first offered node; with MapPreferenceRoute it plans
// a full path through the act by symbol weight once per act and then
// follows it floor by floor.
func (h *Heuristic) chooseMapNode(snap *spire.Snapshot) spire.Action {
	screen := snap.Screen.Map
	if screen == nil || (len(screen.NextNodes) == 0 && !screen.BossAvailable) {
		return spire.Proceed(snap)
	}
	if screen.BossAvailable {
		return spire.ChooseNamed(snap, "boss")
	}
	if h.prefs.MapPreference == MapPreferenceFirst || snap.Map == nil {
		return spire.Choose(snap, 0)
	}

	currentY := -1
	if screen.CurrentNode != nil && !screen.FirstFloor {
		currentY = screen.CurrentNode.Y
	}
	if screen.FirstFloor || h.mapRoute == nil {
		h.mapRoute = planRoute(snap.Map, h.prefs)
	}
	if currentY+1 < len(h.mapRoute) {
		wantX := h.mapRoute[currentY+1]
		for i, node := range screen.NextNodes {
			if node.X == wantX {
				return spire.Choose(snap, i)
			}
		}
	}
	// Route no longer matches what the game offers; replan from here
	// next time and take the first node for now.
	h.mapRoute = nil
	return spire.Choose(snap, 0)
}

// planRoute runs the forward dynamic program over the act map: for each
// floor keep the best cumulative symbol weight per column and the parent
// that achieved it, then walk the argmax back down.
func planRoute(graph *spire.MapGraph, prefs Preferences) []int {
	height := graph.Height()
	if height < 0 {
		return nil
	}

	const unreachable = -1 << 30
	bestReward := make([]map[int]int, height+1)
	bestParent := make([]map[int]int, height+1)
	for y := 0; y <= height; y++ {
		bestReward[y] = make(map[int]int)
		bestParent[y] = make(map[int]int)
		for x, node := range graph.Nodes[y] {
			if y == 0 {
				bestReward[y][x] = prefs.symbolWeight(node.Symbol)
			} else {
				bestReward[y][x] = unreachable
			}
			bestParent[y][x] = -1
		}
	}
	for y := 0; y < height; y++ {
		for x, node := range graph.Nodes[y] {
			from := bestReward[y][x]
			if from == unreachable {
				continue
			}
			for _, child := range node.Children {
				childNode, ok := graph.Get(child.X, child.Y)
				if !ok {
					continue
				}
				total := from + prefs.symbolWeight(childNode.Symbol)
				if total > bestReward[child.Y][child.X] ||
					(total == bestReward[child.Y][child.X] && x < bestParent[child.Y][child.X]) {
					bestReward[child.Y][child.X] = total
					bestParent[child.Y][child.X] = x
				}
			}
		}
	}

	route := make([]int, height+1)
	topX, topScore := -1, unreachable
	for x, score := range bestReward[height] {
		if score > topScore || (score == topScore && x < topX) {
			topX, topScore = x, score
		}
	}
	route[height] = topX
	for y := height; y > 0; y-- {
		route[y-1] = bestParent[y][route[y]]
	}
	return route
}
