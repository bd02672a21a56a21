package dto

type CreateTemplateRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	PreviewImage  string `json:"preview_image"`
	Category      string `json:"category"`
	IsAtsFriendly bool   `json:"is_ats_friendly"`
}

type UpdateTemplateRequest struct {
	Name          *string `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
	PreviewImage  *string `json:"preview_image,omitempty"`
	Category      *string `json:"category,omitempty"`
	IsAtsFriendly *bool   `json:"is_ats_friendly,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}
