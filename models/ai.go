package models

// InterpretRequest is the payload coming from the frontend into
// /api/search/interpret: a transcribed voice utterance or typed query.
type InterpretRequest struct {
	Query string `json:"query" binding:"required"`
}

// QueryInterpretation is the structured filter extracted from a
// free-text equipment query. When no specific equipment type can be
// identified the interpreter falls back to "General Farm Equipment".
type QueryInterpretation struct {
	EquipmentType string   `json:"equipmentType"`
	RentalIntent  bool     `json:"rentalIntent"`
	Keywords      []string `json:"keywords"`
}
