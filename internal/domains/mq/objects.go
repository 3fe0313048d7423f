package mq

const (
	StatusOK    = "ok"
	StatusError = "error"
)

type Handler func(m *Msg) (resp any)

// Response is the common envelope of every MQ reply.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func NewOkResponse() Response {
	return Response{
		Status: StatusOK,
	}
}

func NewErrorResponse(errMsg string) Response {
	return Response{
		Status: StatusError,
		Error:  errMsg,
	}
}
