package utils

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClientIPHeaders - заголовки с адресом клиента в порядке приоритета
var ClientIPHeaders = []string{
	"X-Forwarded-For",
	"X-Real-IP",
	"CF-Connecting-IP",
	"X-Client-IP",
	"X-Cluster-Client-IP",
}

// ClientIP возвращает адрес клиента из заголовков прокси.
// Пустая строка означает, что адрес определит провайдер геолокации.
func ClientIP(c *fiber.Ctx) string {
	for _, header := range ClientIPHeaders {
		value := c.Get(header)
		if value == "" {
			continue
		}
		first := strings.TrimSpace(strings.Split(value, ",")[0])
		if first != "" {
			return first
		}
	}
	return ""
}

// IsUnspecifiedIP - адрес 0.0.0.0 или ::
func IsUnspecifiedIP(ip string) bool {
	parsed := net.ParseIP(ip)
	return parsed != nil && parsed.IsUnspecified()
}

// IsPublicIP reports whether ip is a routable unicast address.
func IsPublicIP(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	return !(parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() ||
		parsed.IsLinkLocalUnicast() || parsed.IsMulticast())
}
