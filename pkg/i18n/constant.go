package i18n

var ALLOW_LANG = map[string]bool{
	"en": true,
	"ko": true,
}

const DEFAULT_LANG = "ko"

const (
	ERROR_INTERNAL            = "error.internal"
	ERROR_NOT_FOUND           = "error.notfound"
	ERROR_INVALIDARGUMENT     = "error.invalidargument"
	ERROR_UNAUTHORIZED        = "error.unauthorized"
	ERROR_PERMISSION_DENIED   = "error.permission.denied"
	ERROR_TOO_MANY_REQUESTS   = "error.tooManyRequests"
	ERROR_PAYMENT_REQUIRED    = "error.payment_required"
	ERROR_EXIST               = "error.exist"
	ERROR_INVALID_ACCOUNT     = "error.invalid.account"
	ERROR_EMAIL_ALREADY_USED  = "error.email_has_already_registed"
	ERROR_PASSWORD_TOO_SHORT  = "error.password.too_short"
	ERROR_PASSWORD_NOT_MATCH  = "error.password.not_match"
	ERROR_AI_RATE_LIMITED     = "error.ai.rate_limited"
	ERROR_AI_QUOTA_EXCEEDED   = "error.ai.quota_exceeded"
	ERROR_AI_SEARCH_FAILED    = "error.ai.search_failed"
	ERROR_BOOKMARK_LOAD_FAIL  = "error.bookmark.load_failed"
	ERROR_BOOKMARK_SAVE_FAIL  = "error.bookmark.save_failed"
	ERROR_RESOURCE_LOAD_FAIL  = "error.resource.load_failed"
	ERROR_RESET_PASSWORD_FAIL = "error.reset_password.failed"

	MESSAGE_RESET_PASSWORD_SENT = "message.reset_password.sent"
)
