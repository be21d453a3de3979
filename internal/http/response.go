package http

type Status string

const (
	// StatusOK is used for health-check responses.
	StatusOK Status = "OK"

	// StatusError indicates a request failed.
	StatusError Status = "error"
)

// Response represents the standard admin API response format.
type Response struct {
	Status Status `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Stats reports the Global node's in-memory state.
type Stats struct {
	Keys    int `json:"keys"`
	Members int `json:"members"`
	Queues  int `json:"queues"`
}

func NewOKResponse() Response {
	return Response{Status: StatusOK}
}

func NewErrorResponse(err string) Response {
	return Response{Status: StatusError, Error: err}
}
