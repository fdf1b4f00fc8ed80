package response

type SyncStatusResponse struct {
	Status   string `json:"status"`
	Endpoint string `json:"endpoint"`
}

type SyncMessageResponse struct {
	Message string `json:"message"`
}
