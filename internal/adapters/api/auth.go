package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/camaradigital/camara-cli/internal/domain"
	"github.com/camaradigital/camara-cli/internal/ports"
	"github.com/golang-jwt/jwt/v5"
)

var _ ports.AuthGateway = (*Client)(nil)

func (c *Client) SignIn(ctx context.Context, req domain.LoginRequest) (domain.Credentials, error) {
	if err := req.Validate(); err != nil {
		return domain.Credentials{}, err
	}

	var resp loginResponseDTO
	if err := c.post(ctx, "/sign-in", loginRequestDTO{UserName: req.UserName, Password: req.Password}, &resp); err != nil {
		return domain.Credentials{}, fmt.Errorf("sign in: %w", err)
	}
	if strings.TrimSpace(resp.AccessToken) == "" {
		return domain.Credentials{}, fmt.Errorf("sign in: response missing access token")
	}

	user := domain.User{
		ID:        domain.UserID(resp.CurrentUser.ID),
		Name:      resp.CurrentUser.Name,
		Email:     resp.CurrentUser.Email,
		President: resp.CurrentUser.President,
	}
	// Top-level fields take precedence over the nested profile.
	if name := strings.TrimSpace(resp.Name); name != "" {
		user.Name = name
	}
	if resp.President != nil {
		user.President = *resp.President
	}

	return domain.Credentials{
		AccessToken: resp.AccessToken,
		ExpiresAt:   resolveExpiration(resp.Expiration, resp.AccessToken),
		User:        user,
		Chamber: domain.Chamber{
			ID:   resp.Chamber.ID,
			Name: resp.Chamber.Name,
			City: resp.Chamber.City,
		},
		PasswordResetRequired: resp.PasswordReseted,
	}, nil
}

func (c *Client) RefreshToken(ctx context.Context) (string, time.Time, error) {
	var resp loginResponseDTO
	if err := c.post(ctx, "/auth/refresh", nil, &resp); err != nil {
		return "", time.Time{}, fmt.Errorf("refresh token: %w", err)
	}
	if strings.TrimSpace(resp.AccessToken) == "" {
		return "", time.Time{}, fmt.Errorf("refresh token: response missing access token")
	}
	return resp.AccessToken, resolveExpiration(resp.Expiration, resp.AccessToken), nil
}

func (c *Client) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error {
	if err := c.put(ctx, "/User/change-password", changePasswordDTO{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		Confirmation:    req.Confirmation,
	}, nil); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

// resolveExpiration prefers the explicit expiration field and falls back to
// the token's exp claim. The token is not verified; the backend does that.
func resolveExpiration(raw string, token string) time.Time {
	if parsed := parseTime(raw); !parsed.IsZero() {
		return parsed
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
