package weather

import (
	"errors"

	"github.com/evyataryagoni/cityweather/internal/models"
)

// Status texts shown in place of the weather when it is not valid
const (
	StatusPending       = "获取中..."
	StatusMissingKey    = "API密钥未设置"
	StatusCityNotFound  = "未找到城市"
	StatusConnectFailed = "连接失败"
	StatusServerError   = "服务器错误"
)

// StatusText picks the display text for a failed weather update
func StatusText(err error) string {
	switch {
	case errors.Is(err, models.ErrMissingAPIKey):
		return StatusMissingKey
	case errors.Is(err, models.ErrCityNotFound):
		return StatusCityNotFound
	case errors.Is(err, models.ErrUnreachable):
		return StatusConnectFailed
	case errors.Is(err, models.ErrUpstream):
		return StatusServerError
	default:
		return StatusConnectFailed
	}
}

// Failed returns an invalid weather value carrying the status text for err
func Failed(err error) *models.Weather {
	return &models.Weather{Text: StatusText(err)}
}
