package request

// CreateConnectionRequest registers a new gateway instance for the tenant.
type CreateConnectionRequest struct {
	InstanceName string `json:"instanceName" binding:"required"`
	Numero       string `json:"numero"`
}

// ConnectionStateRequest asks for the live state of one instance. Bound from
// the body on the reconciling endpoint and from the query on the probe.
type ConnectionStateRequest struct {
	InstanceName string `json:"instanceName" form:"instanceName" binding:"required"`
}

// DeleteConnectionRequest removes an instance at the gateway and locally.
type DeleteConnectionRequest struct {
	InstanceName string `json:"instanceName" binding:"required"`
}

// SyncContactsRequest imports the instance's contact list.
type SyncContactsRequest struct {
	InstanceName string `json:"instanceName" binding:"required"`
}
