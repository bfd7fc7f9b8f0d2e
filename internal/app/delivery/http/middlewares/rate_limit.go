package middlewares

import (
	"medrecord-service/internal/app/services/shared/ratelimiter"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// LimitTokenIssuance throttles the token endpoint per caller IP with a fixed
// one-minute window. A limiter backend outage fails open so an unhealthy Redis
// cannot lock everyone out of login.
func (m *Middlewares) LimitTokenIssuance(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		output, err := m.ResourceLimiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
			ResourceName:      ip,
			LimiterGroupName:  constvars.TokenRateLimiterGroup,
			WindowDurationSec: 60,
			MaxQuota:          m.InternalConfig.App.TokenMaxRequestsPerMinute,
		})
		if err != nil {
			m.Log.Warn("token rate limiter unavailable, allowing request",
				zap.String("ip", ip),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		if !output.Allowed {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(output.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyTokenRequests(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
