package feed

import (
	"fmt"
	"sync"
)

type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Alerts holds the "feature coming soon" alert of a single feed, so two sessions
// never suppress each other's alerts. At most one alert is showing at a time.
type Alerts struct {
	mu      sync.Mutex
	current *Alert
}

// Show displays an alert for feature unless one is already showing. An empty
// message uses the generic text.
func (a *Alerts) Show(feature, message string) (Alert, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current != nil {
		return *a.current, false
	}

	if message == "" {
		message = fmt.Sprintf("The %s feature is not implemented yet. "+
			"This functionality will be available in a future update.", feature)
	}

	alert := Alert{Title: feature + " Coming Soon", Message: message}
	a.current = &alert
	return alert, true
}

func (a *Alerts) Dismiss() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = nil
}

func (a *Alerts) Current() (Alert, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return Alert{}, false
	}
	return *a.current, true
}

func (a *Alerts) Favorites() (Alert, bool) {
	return a.Show("Favorites",
		"The Favorites feature will allow you to save NFTs for later viewing. Coming in a future update!")
}

func (a *Alerts) Settings() (Alert, bool) {
	return a.Show("Settings",
		"The Settings page will allow you to customize your app experience. Coming in a future update!")
}

func (a *Alerts) OpenSea(contractAddress, tokenID string) (Alert, bool) {
	message := "The OpenSea integration will allow you to view and purchase NFTs on OpenSea. " +
		"Coming in a future update!"
	if contractAddress != "" && tokenID != "" {
		short := contractAddress
		if len(short) > 6 {
			short = short[:6]
		}
		message = fmt.Sprintf("The OpenSea integration will allow you to view and purchase this NFT (%s...%s) "+
			"on OpenSea. Coming in a future update!", short, tokenID)
	}

	return a.Show("OpenSea Integration", message)
}
