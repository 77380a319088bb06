package tools

// PhoneLookupRequest for POST /tools/phone-lookup
type PhoneLookupRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

// EyeconLookupRequest for POST /tools/eyecon-lookup
type EyeconLookupRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

// TempEmailRequest for POST /tools/temp-email
type TempEmailRequest struct {
	Action string `json:"action" validate:"required,oneof=generate check"`
	Login  string `json:"login" validate:"omitempty,max=64"`
	Domain string `json:"domain" validate:"omitempty,max=255"`
}

// YouTubeRequest for POST /tools/youtube-download
type YouTubeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ImageEnhanceRequest for POST /tools/image-enhance
type ImageEnhanceRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

// TamashaOTPRequest for POST /tools/tamasha-otp
type TamashaOTPRequest struct {
	Phone  string `json:"phone" validate:"required,phone"`
	Action string `json:"action" validate:"required,oneof=send verify"`
	OTP    string `json:"otp" validate:"omitempty,len=4|len=6"`
}
