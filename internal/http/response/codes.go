package response

const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeInternal     = 500
)

// httpStatusFor 业务码到 HTTP 状态码的映射
func httpStatusFor(statusCode int) int {
	if statusCode >= 400 && statusCode < 600 {
		return statusCode
	}
	return 200
}
