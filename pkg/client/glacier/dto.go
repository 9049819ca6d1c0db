package glacier

type (
	ListCollectiblesRequest struct {
		Address   string
		PageSize  int
		PageToken string
	}

	// ListCollectiblesResponse is the collectibleBalances revision of the endpoint.
	ListCollectiblesResponse struct {
		CollectibleBalances []Collectible `json:"collectibleBalances"`
		NextPageToken       string        `json:"nextPageToken,omitempty"`

		// Skipped counts balance entries that were not JSON objects.
		Skipped int `json:"-"`
	}

	// Collectible is one balance entry; every field may be missing.
	Collectible struct {
		Address  string `json:"address"`
		TokenID  string `json:"tokenId"`
		Name     string `json:"name,omitempty"`
		Symbol   string `json:"symbol,omitempty"`
		TokenURI string `json:"tokenUri,omitempty"`
		ErcType  string `json:"ercType,omitempty"`
	}
)

type APIError struct {
	Message    string `json:"message"`
	ErrorText  string `json:"error"`
	StatusCode int64  `json:"statusCode"`
}
