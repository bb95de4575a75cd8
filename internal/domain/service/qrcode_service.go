package service

// QRCodeService defines the interface for group invite QR codes
type QRCodeService interface {
	// GenerateGroupInviteQR renders a PNG that encodes the group's invite code
	GenerateGroupInviteQR(groupID, inviteCode string) ([]byte, error)

	// ParseGroupInviteQR extracts the invite code from scanned QR content
	ParseGroupInviteQR(qrData string) (string, error)
}
