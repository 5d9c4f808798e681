package meta

// tokenResponse is the OAuth token-exchange payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// accountsResponse is the shape of /me?fields=accounts{name,instagram_business_account}.
type accountsResponse struct {
	Accounts struct {
		Data []accountPage `json:"data"`
	} `json:"accounts"`
	ID string `json:"id"`
}

type accountPage struct {
	Name                     string           `json:"name"`
	InstagramBusinessAccount *businessAccount `json:"instagram_business_account"`
	ID                       string           `json:"id"`
}

type businessAccount struct {
	ID string `json:"id"`
}

// mediaListResponse is one page of /{account-id}/media with nested children.
type mediaListResponse struct {
	Data   []mediaItem `json:"data"`
	Paging struct {
		Cursors struct {
			Before string `json:"before"`
			After  string `json:"after"`
		} `json:"cursors"`
		Next string `json:"next"`
	} `json:"paging"`
}

type mediaItem struct {
	ID        string  `json:"id"`
	Caption   *string `json:"caption"`
	MediaURL  string  `json:"media_url"`
	Timestamp string  `json:"timestamp"`
	MediaType string  `json:"media_type"`
	Permalink string  `json:"permalink"`
	Children  *struct {
		Data []mediaChild `json:"data"`
	} `json:"children"`
}

type mediaChild struct {
	ID        string `json:"id"`
	MediaURL  string `json:"media_url"`
	MediaType string `json:"media_type"`
}

// errorEnvelope is the Graph API error wrapper on non-2xx responses.
type errorEnvelope struct {
	Error struct {
		Message      string `json:"message"`
		Type         string `json:"type"`
		Code         int    `json:"code"`
		ErrorSubcode int    `json:"error_subcode"`
		TraceID      string `json:"fbtrace_id"`
	} `json:"error"`
}
