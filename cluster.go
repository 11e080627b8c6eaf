package tablefind

import "sort"

// ClusterFloats sorts values and starts a new cluster whenever the gap to the
// previous value exceeds tol. Clusters are returned in ascending order.
func ClusterFloats(values []float64, tol float64) [][]float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	clusters := [][]float64{{sorted[0]}}
	for _, v := range sorted[1:] {
		last := clusters[len(clusters)-1]
		if v-last[len(last)-1] > tol {
			clusters = append(clusters, []float64{v})
		} else {
			clusters[len(clusters)-1] = append(last, v)
		}
	}
	return clusters
}

// clusterIndices clusters the indices 0..len(keys)-1 by their key value under
// tolerance tol, returning clusters sorted by ascending centroid. It is the
// index-carrying counterpart to ClusterFloats, used wherever callers need to
// recover which object produced which key (cluster_objects in the spec).
func clusterIndices(keys []float64, tol float64) [][]int {
	if len(keys) == 0 {
		return nil
	}
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return keys[order[i]] < keys[order[j]] })

	var clusters [][]int
	for _, idx := range order {
		if len(clusters) == 0 || keys[idx]-keys[clusters[len(clusters)-1][len(clusters[len(clusters)-1])-1]] > tol {
			clusters = append(clusters, []int{idx})
		} else {
			last := len(clusters) - 1
			clusters[last] = append(clusters[last], idx)
		}
	}
	return clusters
}
