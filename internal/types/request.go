package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params" binding:"required"`
}

// ComplexValue is the wire form of a complex number
type ComplexValue struct {
	Re Float `json:"re" yaml:"re" toml:"re"`
	Im Float `json:"im" yaml:"im" toml:"im"`
}

// EvaluateRequest evaluates a single complex function.
// Z is the complex argument; P, N and X carry the real, integer
// and real-base arguments of the power functions.
type EvaluateRequest struct {
	Z ComplexValue `json:"z"`
	P *Float       `json:"p,omitempty"`
	N *int         `json:"n,omitempty"`
	X *Float       `json:"x,omitempty"`
}

// DiscoverRequest asks the registry for services matching free text
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit,omitempty"`
}

// Params converts the request into the parameter map of a complex tool
func (r EvaluateRequest) Params() map[string]interface{} {
	params := map[string]interface{}{
		"z": map[string]interface{}{"re": float64(r.Z.Re), "im": float64(r.Z.Im)},
	}
	if r.P != nil {
		params["p"] = float64(*r.P)
	}
	if r.N != nil {
		params["n"] = *r.N
	}
	if r.X != nil {
		params["x"] = float64(*r.X)
	}
	return params
}
