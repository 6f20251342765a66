package prompt

import "encoding/json"

// Response is the tagged envelope every handler produces. Payload shape
// varies by type, so it stays loosely typed until serialization.
type Response struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	TypeLines          = "lines"
	TypeLink           = "link"
	TypeContextReset   = "context_reset"
	TypeDataDetail     = "data_detail"
	TypeDataCheck      = "data_check"
	TypeSearchResults  = "search_results"
	TypeSearchNotFound = "search_not_found"
	TypeUtilization    = "utilization"
	TypeError          = "error"
)

func LinesResponse(lines ...string) Response {
	return Response{Type: TypeLines, Payload: lines}
}

func ErrorResponse(message string) Response {
	return Response{Type: TypeError, Payload: map[string]string{"message": message}}
}

func LinkResponse(url string) Response {
	return Response{Type: TypeLink, Payload: map[string]string{"url": url}}
}

func UtilizationResponse(raw json.RawMessage) Response {
	return Response{Type: TypeUtilization, Payload: raw}
}
