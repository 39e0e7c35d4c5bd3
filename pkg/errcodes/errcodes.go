package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	ConfigurationMissing failure.ErrorCode = "ConfigurationMissing"
	ProviderUnavailable  failure.ErrorCode = "ProviderUnavailable"
	ProviderValidation   failure.ErrorCode = "ProviderValidation"
	ProviderRateLimited  failure.ErrorCode = "ProviderRateLimited"
	NetworkFailure       failure.ErrorCode = "NetworkFailure"

	InvestorAlreadyExists failure.ErrorCode = "InvestorAlreadyExists"
	InvestorNotFound      failure.ErrorCode = "InvestorNotFound"
	InvalidInvestorType   failure.ErrorCode = "InvalidInvestorType"
	InvalidInvestorID     failure.ErrorCode = "InvalidInvestorID"
	InvalidAmount         failure.ErrorCode = "InvalidAmount"
	InvalidEmail          failure.ErrorCode = "InvalidEmail"
	SectionLocked         failure.ErrorCode = "SectionLocked"
)
