package handlers

import (
	"time"

	"confdiscovery/domain"
)

// InstanceInfo is the wire shape of one instance.
type InstanceInfo struct {
	InstanceID string    `json:"instance_id"`
	Kind       string    `json:"kind"`
	SIP        bool      `json:"sip"`
	Healthy    bool      `json:"healthy"`
	Load       int       `json:"load"`
	Region     string    `json:"region,omitempty"`
	Version    string    `json:"version,omitempty"`
	LastSeen   time.Time `json:"last_seen"`
}

// InstancesResponse is the wire shape of an instance list.
type InstancesResponse struct {
	Instances []InstanceInfo `json:"instances"`
}

// toInstanceInfo converts a domain instance to its API shape.
func toInstanceInfo(instance domain.ServiceInstance) InstanceInfo {
	return InstanceInfo{
		InstanceID: instance.InstanceID,
		Kind:       string(instance.Kind),
		SIP:        instance.SIP,
		Healthy:    instance.State.Healthy,
		Load:       instance.State.Load,
		Region:     instance.State.Region,
		Version:    instance.State.Version,
		LastSeen:   instance.LastSeen,
	}
}

// toInstancesResponse converts domain instances to the API response.
func toInstancesResponse(instances []domain.ServiceInstance) InstancesResponse {
	out := make([]InstanceInfo, 0, len(instances))
	for _, i := range instances {
		out = append(out, toInstanceInfo(i))
	}
	return InstancesResponse{Instances: out}
}
