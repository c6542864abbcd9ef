package api

import "github.com/psemenov/raclient/internal/client/models"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type magicLinkRequest struct {
	Email string `json:"email"`
}

type magicVerifyRequest struct {
	Token string `json:"token"`
}

type queryRequest struct {
	Question string `json:"question"`
}

type sourceDTO struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

type queryResponse struct {
	Answer  string      `json:"answer"`
	Sources []sourceDTO `json:"sources"`
}

// errorResponse carries the backend's failure reason, FastAPI-style.
type errorResponse struct {
	Detail string `json:"detail"`
}

// sourceName extracts a display name for a source document. The backend's
// ingestion pipelines disagree on the metadata key, so try the known
// variants in order.
func sourceName(md map[string]any) string {
	for _, key := range []string{"source", "file_name", "filename"} {
		if v, ok := md[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return "unknown"
}

func (r queryResponse) toModel() models.Answer {
	answer := models.Answer{Answer: r.Answer}
	for _, src := range r.Sources {
		answer.Sources = append(answer.Sources, models.Source{Name: sourceName(src.Metadata)})
	}
	return answer
}
