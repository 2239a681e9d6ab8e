package types

// Category groups services in listings and discovery
type Category string

const (
	CategoryComplex    Category = "complex"
	CategoryStatistics Category = "statistics"
)

// Service describes a provider and the tools it exposes. Tool IDs are
// "<Service.ID>.<name>".
type Service struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Category     Category    `json:"category"`
	Capabilities []string    `json:"capabilities"`
	Tools        []Tool      `json:"tools"`
	DataModels   []DataModel `json:"data_models,omitempty"`
}

// Tool is one callable operation of a service
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Parameter documents a tool argument. Type is a wire type such as
// "complex", "number", "integer" or "csv".
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// DataModel names the fields of a value shape tools exchange, e.g. the
// {re, im} form of a complex number.
type DataModel struct {
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

// Context identifies the HTTP request a tool call came from
type Context struct {
	RequestID *string `json:"request_id,omitempty"`
	ClientIP  *string `json:"client_ip,omitempty"`
}

// Result is what every tool returns. A numerical failure is a Result with
// Success false and its kind under ErrorKindKey, never a Go error.
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}

// ErrorKindKey is the Result.Data key naming the failure kind of an
// unsuccessful result
const ErrorKindKey = "error_kind"

// Failure kinds reported under ErrorKindKey
const (
	KindInvalidParams  = "invalid_params"
	KindNonconvergence = "nonconvergence"
	KindDomain         = "domain"
	KindInsufficient   = "insufficient_data"
	KindDimension      = "dimension_mismatch"
	KindUnknownTool    = "unknown_tool"
	KindRateLimited    = "rate_limited"
	KindInternal       = "internal"
)

// Succeeded wraps data in a successful Result
func Succeeded(data map[string]interface{}) *Result {
	return &Result{Success: true, Data: data}
}

// Failed builds an unsuccessful Result tagged with kind
func Failed(kind, message string) *Result {
	return &Result{
		Success: false,
		Error:   &message,
		Data:    map[string]interface{}{ErrorKindKey: kind},
	}
}

// Kind returns the failure kind, or "" for a success or an untagged failure
func (r *Result) Kind() string {
	if r == nil || r.Success {
		return ""
	}
	kind, _ := r.Data[ErrorKindKey].(string)
	return kind
}
