package server

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/wealthlens/wealthlens/internal/common"
	"github.com/wealthlens/wealthlens/internal/models"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// --- JWT helpers ---

// signJWT creates a signed HMAC-SHA256 JWT for the given user.
func signJWT(user *models.User, config *common.AuthConfig) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Phone,
		"name": user.Name,
		"iss":  "wealthlens-server",
		"iat":  now.Unix(),
		"exp":  now.Add(config.GetTokenExpiry()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// validateJWT parses and validates a JWT token string using the given secret.
func validateJWT(tokenString string, secret []byte) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// --- OTP send rate limiting ---

// otpLimiters throttles OTP sends per phone number.
type otpLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perMin   float64
}

func newOTPLimiters(perMin float64) *otpLimiters {
	if perMin <= 0 {
		perMin = 3
	}
	return &otpLimiters{
		limiters: make(map[string]*rate.Limiter),
		perMin:   perMin,
	}
}

func (l *otpLimiters) allow(phone string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[phone]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(l.perMin/60), int(l.perMin))
		l.limiters[phone] = lim
	}
	return lim.Allow()
}

// generateOTP returns a random 6-digit code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// --- Handlers ---

// handleSendOTP handles POST /api/auth/send-otp. The code is bcrypt-hashed
// before storage; in demo mode the plain code is echoed back for local
// development.
func (s *Server) handleSendOTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Phone string `json:"phone"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	phone := strings.TrimSpace(req.Phone)
	if !phonePattern.MatchString(phone) {
		WriteError(w, http.StatusBadRequest, "invalid phone number")
		return
	}

	if !s.otpLimiter.allow(phone) {
		WriteError(w, http.StatusTooManyRequests, "too many OTP requests, try again later")
		return
	}

	cfg := &s.app.Config.Auth
	otp := cfg.DemoOTP
	if !cfg.DemoMode || otp == "" {
		var err error
		otp, err = generateOTP()
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to generate OTP")
			WriteError(w, http.StatusInternalServerError, "failed to generate OTP")
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash OTP")
		WriteError(w, http.StatusInternalServerError, "failed to process OTP")
		return
	}

	challenge := &models.OTPChallenge{
		Phone:     phone,
		OTPHash:   string(hash),
		CreatedAt: time.Now(),
	}
	if err := s.app.Storage.UserStore().SaveChallenge(r.Context(), challenge); err != nil {
		s.logger.Error().Err(err).Str("phone", phone).Msg("Failed to save OTP challenge")
		WriteError(w, http.StatusInternalServerError, "failed to send OTP")
		return
	}

	resp := map[string]interface{}{
		"success": true,
		"message": "OTP sent successfully",
	}
	if cfg.DemoMode {
		// No SMS provider in demo mode; expose the code for local use.
		resp["demo"] = true
		resp["otp"] = otp
		s.logger.Info().Str("phone", phone).Msg("Demo OTP issued")
	} else {
		s.logger.Info().Str("phone", phone).Msg("OTP challenge created")
	}
	WriteJSON(w, http.StatusOK, resp)
}

// handleVerifyOTP handles POST /api/auth/verify-otp. Challenges expire after
// the configured window and allow a bounded number of attempts.
func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Phone string `json:"phone"`
		OTP   string `json:"otp"`
		Name  string `json:"name"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" || req.OTP == "" {
		WriteError(w, http.StatusBadRequest, "phone and otp are required")
		return
	}

	ctx := r.Context()
	store := s.app.Storage.UserStore()
	cfg := &s.app.Config.Auth

	challenge, err := store.GetChallenge(ctx, phone)
	if err != nil {
		s.logger.Error().Err(err).Str("phone", phone).Msg("Failed to load OTP challenge")
		WriteError(w, http.StatusInternalServerError, "verification failed")
		return
	}
	if challenge == nil {
		WriteError(w, http.StatusUnauthorized, "invalid or expired OTP")
		return
	}

	if time.Since(challenge.CreatedAt) > cfg.GetOTPExpiry() {
		_ = store.DeleteChallenge(ctx, phone)
		WriteError(w, http.StatusUnauthorized, "invalid or expired OTP")
		return
	}
	if challenge.Attempts >= cfg.OTPMaxAttempts {
		_ = store.DeleteChallenge(ctx, phone)
		WriteError(w, http.StatusUnauthorized, "too many failed attempts")
		return
	}

	challenge.Attempts++
	if err := bcrypt.CompareHashAndPassword([]byte(challenge.OTPHash), []byte(req.OTP)); err != nil {
		_ = store.SaveChallenge(ctx, challenge)
		WriteError(w, http.StatusUnauthorized, "invalid or expired OTP")
		return
	}

	_ = store.DeleteChallenge(ctx, phone)

	user, err := store.GetUser(ctx, phone)
	if err != nil {
		s.logger.Error().Err(err).Str("phone", phone).Msg("Failed to load user")
		WriteError(w, http.StatusInternalServerError, "verification failed")
		return
	}
	if user == nil {
		user = &models.User{Phone: phone, Name: req.Name, CreatedAt: time.Now()}
	}
	user.LastLogin = time.Now()
	if err := store.SaveUser(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("phone", phone).Msg("Failed to save user")
		WriteError(w, http.StatusInternalServerError, "verification failed")
		return
	}

	token, err := signJWT(user, cfg)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to sign JWT")
		WriteError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": token,
		"token_type":   "bearer",
		"phone":        user.Phone,
	})
}

// handleMe handles GET /api/auth/me.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	uc := common.UserContextFromContext(r.Context())
	if uc == nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := s.app.Storage.UserStore().GetUser(r.Context(), uc.Phone)
	if err != nil || user == nil {
		WriteError(w, http.StatusUnauthorized, "user not found")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"phone":      user.Phone,
		"name":       user.Name,
		"email":      user.Email,
		"created_at": user.CreatedAt,
		"last_login": user.LastLogin,
	})
}

// requireUser resolves the authenticated user from context, writing 401 when
// absent. Returns the user ID and true on success.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := common.ResolveUserID(r.Context())
	if userID == "" {
		w.Header().Set("WWW-Authenticate", "Bearer")
		WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return "", false
	}
	return userID, true
}
