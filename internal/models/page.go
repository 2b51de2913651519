package models

// Notice levels shown by the panel.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
	NoticeWarning = "warning"
	NoticeInfo    = "info"
)

type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// PageResponse is the body of every panel endpoint.
type PageResponse struct {
	OK       bool              `json:"ok"`
	Data     interface{}       `json:"data,omitempty"`
	Meta     *PaginationMeta   `json:"meta,omitempty"`
	Notice   *Notice           `json:"notice,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

func Success(data interface{}) PageResponse {
	return PageResponse{OK: true, Data: data}
}

func SuccessNotice(data interface{}, message, redirect string) PageResponse {
	return PageResponse{
		OK:       true,
		Data:     data,
		Notice:   &Notice{Level: NoticeSuccess, Message: message},
		Redirect: redirect,
	}
}

func Failure(message string) PageResponse {
	return PageResponse{OK: false, Notice: &Notice{Level: NoticeError, Message: message}}
}

func Invalid(message string, fields map[string]string) PageResponse {
	return PageResponse{
		OK:     false,
		Notice: &Notice{Level: NoticeError, Message: message},
		Errors: fields,
	}
}
