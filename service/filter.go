package service

import (
	"sort"

	"confdiscovery/domain"
)

// SelectInstances returns the instances matching pred, ordered by instance id
// ascending so equal inputs always yield the same list. A nil pred matches
// everything; no match yields an empty list, never an error — distinguishing
// "nothing registered" from "kind not configured" is the facade's job.
func SelectInstances(snapshot []domain.ServiceInstance, pred func(domain.ServiceInstance) bool) []domain.ServiceInstance {
	out := make([]domain.ServiceInstance, 0, len(snapshot))
	for _, inst := range snapshot {
		if pred == nil || pred(inst) {
			out = append(out, inst)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InstanceID < out[j].InstanceID })
	return out
}
