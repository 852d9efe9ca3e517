package http

// Auth

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// Chat

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// Content editing

type PatchFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

type PatchStringFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// ListTextRequest carries the single free-text control used for the flat
// string lists (stack, services): comma separated, trimmed on save.
type ListTextRequest struct {
	Values string `json:"values"`
}

// ThemeRequest selects a named preset or, with Hex, a custom color.
type ThemeRequest struct {
	Preset string `json:"preset"`
	Hex    string `json:"hex"`
}

type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}
