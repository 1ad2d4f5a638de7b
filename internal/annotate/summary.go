package annotate

import "rowgroup/internal/matching"

// Summary describes a finished pass.
type Summary struct {
	Rows            int
	RowsWithoutKeys int
	Clusters        int
	LargestCluster  int
	Merges          int
	Keys            int
}

func summarize(mapper *matching.Mapper, nodes []matching.NodeID) Summary {
	stats := mapper.Stats()
	sizes := make(map[matching.NodeID]int)
	for _, node := range nodes {
		sizes[mapper.Root(node)]++
	}

	s := Summary{
		Rows:            len(nodes),
		RowsWithoutKeys: stats.KeylessRows,
		Clusters:        len(sizes),
		Merges:          stats.Merges,
		Keys:            stats.Keys,
	}
	for _, size := range sizes {
		if size > s.LargestCluster {
			s.LargestCluster = size
		}
	}
	return s
}
