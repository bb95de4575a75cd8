package qrcode

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"smokebreak/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const qrTypeGroupInvite = "group_invite"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	GroupID    string `json:"group_id"`
	InviteCode string `json:"invite_code"`
	Type       string `json:"type"`
	URL        string `json:"url,omitempty"` // Join link, set when a base URL is configured
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateGroupInviteQR generates a QR code that joins the group when scanned
func (s *qrcodeService) GenerateGroupInviteQR(groupID, inviteCode string) ([]byte, error) {
	if inviteCode == "" {
		return nil, fmt.Errorf("invite code is empty")
	}

	data := QRCodeData{
		GroupID:    groupID,
		InviteCode: inviteCode,
		Type:       qrTypeGroupInvite,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/join?code=" + url.QueryEscape(inviteCode)
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseGroupInviteQR accepts the JSON payload or a join link and returns the invite code
func (s *qrcodeService) ParseGroupInviteQR(qrData string) (string, error) {
	qrData = strings.TrimSpace(qrData)

	if strings.HasPrefix(qrData, "http://") || strings.HasPrefix(qrData, "https://") {
		link, err := url.Parse(qrData)
		if err != nil {
			return "", fmt.Errorf("failed to parse join link: %w", err)
		}

		code := link.Query().Get("code")
		if code == "" {
			return "", fmt.Errorf("join link has no invite code")
		}

		return code, nil
	}

	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != qrTypeGroupInvite {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.InviteCode == "" {
		return "", fmt.Errorf("QR code has no invite code")
	}

	return data.InviteCode, nil
}
