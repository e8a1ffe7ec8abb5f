package validator

import "zeit/shared/constant"

var tagMessages = map[string]string{
	"required": constant.ResponseErrorMissingTimezone,
	"tzformat": constant.ResponseErrorZoneFormat,
}

func messageForTag(tag string) string {
	if msg, ok := tagMessages[tag]; ok {
		return msg
	}

	return constant.ResponseErrorZoneFormat
}
