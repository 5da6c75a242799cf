package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/akolanti/StudyAPI/internal/adapter/utils"
	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/handlers"
	"github.com/google/uuid"
)

func injectTrace(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("Injecting trace middleware")
	req := re.req
	if req == nil {
		//this is a bad request
		re.badRequest.httpCode = http.StatusBadRequest
		re.badRequest.errorMessage = "request is empty"
		re.badRequest.isBadRequest = true
		return re
	}
	trace := req.Header.Get(config.TRACE_ID_HEADER)
	if trace == "" {
		trace = utils.GetNewUUID()
	}
	re.logger = re.logger.With("traceId", trace)
	ctx := context.WithValue(req.Context(), config.TRACE_ID_KEY, trace)
	req.Header.Set(config.TRACE_ID_HEADER, trace)
	re.writer.Header().Set(config.TRACE_ID_HEADER, trace)
	re.req = req.WithContext(ctx)

	re.logger.Debug("trace middleware injected")
	return re
}

// injectSession picks the session id from the cookie, then the header, and mints one otherwise.
// Ids that are not UUIDs are replaced so clients can't choose arbitrary store keys.
func injectSession(re requestResponseStruct) requestResponseStruct {
	sessionId, source := sessionFromRequest(re.req)
	if sessionId == "" {
		sessionId = utils.GetNewUUID()
		source = "new"
	}
	re.logger = re.logger.With("sessionId", sessionId)
	re.logger.Debug("Session identified", "source", source)

	http.SetCookie(re.writer, &http.Cookie{
		Name:     config.SESSION_COOKIE_NAME,
		Value:    sessionId,
		Path:     "/",
		MaxAge:   int(config.SessionNoteTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	re.writer.Header().Set(config.SESSION_ID_HEADER, sessionId)

	ctx := context.WithValue(re.req.Context(), config.SESSION_ID_KEY, sessionId)
	re.req = re.req.WithContext(ctx)
	return re
}

func sessionFromRequest(req *http.Request) (string, string) {
	if cookie, err := req.Cookie(config.SESSION_COOKIE_NAME); err == nil && validSessionId(cookie.Value) {
		return cookie.Value, "cookie"
	}
	if header := strings.TrimSpace(req.Header.Get(config.SESSION_ID_HEADER)); validSessionId(header) {
		return header, "header"
	}
	return "", ""
}

func validSessionId(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func rateLimiter(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("Rate limiter middleware")
	ip, _, err := net.SplitHostPort(re.req.RemoteAddr)
	if err != nil {
		ip = re.req.RemoteAddr
	}

	if !limiterInstance.GetLimiter(ip).Allow() {
		re.logger.Warn("Too many requests", "ip", ip)
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusTooManyRequests,
			kind:         "RATE_LIMITED",
			errorMessage: "Too many requests. Please slow down.",
		}
		return re
	}
	re.logger.Debug("Rate limiter middleware authorized")
	return re
}

func handleBadRequest(re requestResponseStruct) bool {
	if re.badRequest.isBadRequest {
		remote := ""
		if re.req != nil {
			remote = re.req.RemoteAddr
		}
		re.logger.Warn("Bad request", "httpCode", re.badRequest.httpCode, "errorMessage", re.badRequest.errorMessage, "IP", remote)
		handlers.WriteErrorResponse(re.writer, re.badRequest.httpCode, re.badRequest.kind, re.badRequest.errorMessage)
		return false
	}
	return true
}
