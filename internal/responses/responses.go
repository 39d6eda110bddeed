package responses

import (
	"net/http"

	"gastrobot/internal/structs"
)

const (
	SuccessCode     = http.StatusOK
	BadRequestCode  = http.StatusBadRequest
	NotFoundCode    = http.StatusNotFound
	InternalErrCode = http.StatusInternalServerError
)

var (
	Success = structs.Response{
		Code:    SuccessCode,
		Message: "success",
	}
	BadRequest = structs.Response{
		Code:    BadRequestCode,
		Message: "bad request",
	}
	NotFound = structs.Response{
		Code:    NotFoundCode,
		Message: "not found",
	}
	InternalErr = structs.Response{
		Code:    InternalErrCode,
		Message: "internal server error",
	}
)
