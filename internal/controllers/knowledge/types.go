package knowledge

// QAPair is a question and its answer as exchanged over HTTP.
type QAPair struct {
	Question string `json:"question" example:"cabin price"`
	Answer   string `json:"answer" example:"Inside cabins start at $499 per person."`
}

// AskRequest is the body of the ask endpoint.
type AskRequest struct {
	Question string `json:"question" example:"price"`
}

// AskResponse carries the matched answer or the fallback text.
type AskResponse struct {
	Answer string `json:"answer"`
}

// StatusResponse is a simple acknowledgement.
type StatusResponse struct {
	Status string `json:"status"`
}

// DatabaseResponse reports database reachability.
type DatabaseResponse struct {
	Database string `json:"database"`
}

// qaPayload tells an absent field apart from an empty one.
type qaPayload struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

type askPayload struct {
	Question *string `json:"question"`
}

const (
	healthStatus  = "AI Cruise Bot Running"
	statusSaved   = "saved"
	statusUpdated = "updated"
	statusDeleted = "deleted"
)
