package apperrors

import (
	"net/http"
)

// Predefined domain errors. Messages are the user-facing strings returned in
// the error envelope; clients match on them, so they must stay stable.

// --- Member ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"member",
	"이메일 혹은 비밀번호를 확인해주세요.",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"member",
	"이미 존재하는 이메일입니다.",
	http.StatusConflict,
)

var ErrMemberNotFound = New(
	CodeNotFound,
	"member",
	"해당 멤버가 존재하지 않습니다.",
	http.StatusNotFound,
)

// --- Dog ---

var ErrDogNotFound = New(
	CodeNotFound,
	"dog",
	"해당 강아지가 존재하지 않습니다.",
	http.StatusNotFound,
)

var ErrImageNotProvided = New(
	CodeValidationFailed,
	"dog",
	"이미지가 존재하지 않습니다.",
	http.StatusBadRequest,
)

var ErrNotDogOwner = New(
	CodeForbidden,
	"dog",
	"해당 강아지의 주인이 아닙니다.",
	http.StatusForbidden,
)

// --- Notification ---

var ErrNotificationNotFound = New(
	CodeNotFound,
	"notification",
	"해당 공고글이 존재하지 않습니다.",
	http.StatusNotFound,
)

var ErrInvalidWalkWindow = New(
	CodeValidationFailed,
	"notification",
	"공고 시간이 올바르지 않습니다.",
	http.StatusBadRequest,
)

// --- Application ---

var ErrNotificationClosed = New(
	CodeConflict,
	"application",
	"이미 매칭이 완료된 공고입니다.",
	http.StatusConflict,
)

var ErrDuplicateApplication = New(
	CodeAlreadyExists,
	"application",
	"이미 지원한 공고입니다.",
	http.StatusConflict,
)

var ErrSelfApplication = New(
	CodeForbidden,
	"application",
	"자신의 공고에는 지원할 수 없습니다.",
	http.StatusForbidden,
)

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"해당 지원서가 존재하지 않습니다.",
	http.StatusNotFound,
)

// --- Match ---

var ErrNotNotificationOwner = New(
	CodeForbidden,
	"match",
	"해당 공고글의 작성자가 아닙니다.",
	http.StatusForbidden,
)

var ErrAlreadyMatched = New(
	CodeConflict,
	"match",
	"이미 매칭이 완료된 공고입니다.",
	http.StatusConflict,
)

var ErrMatchNotFound = New(
	CodeNotFound,
	"match",
	"해당 매칭이 존재하지 않습니다.",
	http.StatusNotFound,
)

// --- Auth ---

var ErrUnauthenticated = New(
	CodeUnauthorized,
	"auth",
	"인증되지 않은 사용자입니다.",
	http.StatusUnauthorized,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"토큰이 만료되었습니다.",
	http.StatusUnauthorized,
)

var ErrForbidden = New(
	CodeForbidden,
	"auth",
	"권한이 없습니다.",
	http.StatusForbidden,
)
