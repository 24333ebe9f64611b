package handlers

import "divinespark/services/auth"

// HandlerBundle groups every handler the router needs, assembled once in
// main.
type HandlerBundle struct {
	AuthService auth.AuthService

	Auth      *AuthHandler
	Sessions  *SessionHandler
	Booking   *BookingHandler
	Checkout  *CheckoutHandler
	Admin     *AdminHandler
	Donations *DonationHandler
	Content   *ContentHandler
}
