package services

import "errors"

// 业务错误集合，控制器用 errors.Is 匹配后转成给用户的提示
var (
	// 账号
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// 心情 / 日记
	ErrMoodNotFound       = errors.New("mood entry not found")
	ErrJournalNotFound    = errors.New("journal entry not found")
	ErrEmptyJournalFields = errors.New("journal title and content are required")

	// 页面跳转
	ErrInvalidPage   = errors.New("unknown page")
	ErrPageForbidden = errors.New("page not allowed for this session")

	// 情绪捕获
	ErrNoCamera       = errors.New("no frame could be read from the camera")
	ErrNoFaceDetected = errors.New("no face could be detected in the frame")
	ErrNoEmotion      = errors.New("no dominant emotion in classifier result")
)
