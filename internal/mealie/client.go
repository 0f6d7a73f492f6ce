package mealie

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Browser is the read-only surface the dashboard consumes.
// This interface is implemented by *Client and can be used for testing.
type Browser interface {
	GetAbout(ctx context.Context) (*About, error)
	GetMealplanToday(ctx context.Context) ([]Mealplan, error)
	GetRecipes(ctx context.Context) (*RecipesResponse, error)
	GetShoppingLists(ctx context.Context) (*ShoppingListsResponse, error)
	GetShoppingItems(ctx context.Context, listID string) (*ShoppingItemsResponse, error)
	GetStatistics(ctx context.Context) (*Statistics, error)
}

// Ensure Client implements Browser at compile time.
var _ Browser = (*Client)(nil)

// Client talks to the Mealie HTTP API.
type Client struct {
	baseURL   *url.URL
	token     string
	timeout   time.Duration
	userAgent string

	httpOnce sync.Once
	http     *http.Client
	ownsHTTP bool

	// householdSupport is set once by DefineHouseholdSupport and cached for
	// the lifetime of the client. Scoped calls made before the probe use the
	// legacy api/groups/ prefix.
	householdSupport bool

	// serverVersion memoizes the about-endpoint version for the recipe
	// import endpoint gate. Recomputing it is harmless, so access is not
	// synchronized.
	serverVersion string
}

const (
	defaultUserAgent = "ladle/0.1"
	defaultTimeout   = 10 * time.Second
	acceptHeader     = "application/json, text/plain, */*"

	perPageAll      = "-1"
	orderByPosition = "position"
	orderAscending  = "asc"
)

// Options configure optional Client behavior. The zero value is usable.
type Options struct {
	// Token is the API bearer token. Empty means unauthenticated requests.
	Token string

	// HTTPClient is a caller-owned session. When nil the Client lazily
	// creates its own on first use and Close releases it; a supplied
	// session is never closed by the Client.
	HTTPClient *http.Client

	// Timeout is the per-request deadline. Zero means 10 seconds.
	Timeout time.Duration
}

// NewClient builds a Client for the given Mealie host or base URL.
func NewClient(apiHost string, opts Options) (*Client, error) {
	base, err := parseBaseURL(apiHost)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   base,
		token:     opts.Token,
		timeout:   timeout,
		userAgent: defaultUserAgent,
		http:      opts.HTTPClient,
	}, nil
}

// session returns the HTTP client, creating an owned one on first use when
// the caller did not supply a session.
func (c *Client) session() *http.Client {
	c.httpOnce.Do(func() {
		if c.http == nil {
			c.http = &http.Client{}
			c.ownsHTTP = true
		}
	})
	return c.http
}

// Close releases the HTTP session if this Client created it. Caller-supplied
// sessions stay open: who created it, closes it.
func (c *Client) Close() {
	if c.ownsHTTP && c.http != nil {
		c.http.CloseIdleConnections()
	}
}

// do is the single chokepoint every API operation goes through. It joins the
// base URL and path, stamps headers, applies the request deadline, classifies
// the response status and content type, and returns the raw body for the
// caller to decode.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	reqURL := c.baseURL.JoinPath(path)
	if len(params) > 0 {
		reqURL.RawQuery = params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.session().Do(req)
	if err != nil {
		return nil, &Error{
			Kind:    KindConnection,
			Message: "connection error while contacting Mealie",
			Err:     err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	// Status classification happens before the body is inspected so every
	// operation shares identical error semantics.
	switch resp.StatusCode {
	case http.StatusBadRequest:
		return nil, &Error{Kind: KindBadRequest, Message: "bad request to Mealie", Body: readBody(resp)}
	case http.StatusUnauthorized:
		return nil, &Error{Kind: KindAuthentication, Message: "unauthorized access to Mealie"}
	case http.StatusUnprocessableEntity:
		return nil, &Error{Kind: KindValidation, Message: "Mealie validation error", Body: readBody(resp)}
	case http.StatusNotFound:
		return nil, &Error{Kind: KindNotFound, Message: "object not found in Mealie", Body: readBody(resp)}
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindConnection, Message: "read response from Mealie", Err: err}
	}

	// Some deployments serve HTML error pages with a 200 status, so the
	// content type is checked even on success.
	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return nil, &Error{
			Kind:        KindGeneric,
			Message:     "unexpected response from Mealie",
			ContentType: contentType,
			Body:        string(text),
		}
	}

	return text, nil
}

func readBody(resp *http.Response) string {
	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	return string(text)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func decodeResponse(what string, data []byte, dest any) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return &Error{Kind: KindValidation, Message: "decode " + what + " response", Err: err}
	}
	return nil
}

// DefineHouseholdSupport probes a household-scoped endpoint once to learn
// whether the server uses the newer api/households/ prefix and caches the
// result for the lifetime of the client. The probe is speculative, so any
// failure records "unsupported" instead of propagating.
func (c *Client) DefineHouseholdSupport(ctx context.Context) bool {
	_, err := c.get(ctx, "api/households/mealplans/today", nil)
	c.householdSupport = err == nil
	return c.householdSupport
}

// HouseholdSupport reports the cached probe result.
func (c *Client) HouseholdSupport() bool {
	return c.householdSupport
}

// versionedPath prefixes a scoped resource path according to the detected
// household support.
func (c *Client) versionedPath(pathEnd string) string {
	if c.householdSupport {
		return "api/households/" + pathEnd
	}
	return "api/groups/" + pathEnd
}

// GetStartupInfo retrieves the server's first-run flag.
func (c *Client) GetStartupInfo(ctx context.Context) (*StartupInfo, error) {
	body, err := c.get(ctx, "api/app/about/startup-info", nil)
	if err != nil {
		return nil, err
	}
	var payload StartupInfo
	if err := decodeResponse("startup info", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetAbout retrieves server build information.
func (c *Client) GetAbout(ctx context.Context) (*About, error) {
	body, err := c.get(ctx, "api/app/about", nil)
	if err != nil {
		return nil, err
	}
	var payload About
	if err := decodeResponse("about", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetUserInfo retrieves the authenticated user.
func (c *Client) GetUserInfo(ctx context.Context) (*UserInfo, error) {
	body, err := c.get(ctx, "api/users/self", nil)
	if err != nil {
		return nil, err
	}
	var payload UserInfo
	if err := decodeResponse("user info", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetGroupsSelf retrieves the authenticated user's group.
func (c *Client) GetGroupsSelf(ctx context.Context) (*GroupSummary, error) {
	body, err := c.get(ctx, "api/groups/self", nil)
	if err != nil {
		return nil, err
	}
	var payload GroupSummary
	if err := decodeResponse("group summary", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetTheme retrieves the server's UI color palette.
func (c *Client) GetTheme(ctx context.Context) (*Theme, error) {
	body, err := c.get(ctx, "api/app/about/theme", nil)
	if err != nil {
		return nil, err
	}
	var payload Theme
	if err := decodeResponse("theme", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetRecipes retrieves the recipe summaries.
func (c *Client) GetRecipes(ctx context.Context) (*RecipesResponse, error) {
	body, err := c.get(ctx, "api/recipes", nil)
	if err != nil {
		return nil, err
	}
	var payload RecipesResponse
	if err := decodeResponse("recipes", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetRecipe retrieves a full recipe by id or slug.
func (c *Client) GetRecipe(ctx context.Context, recipeIDOrSlug string) (*Recipe, error) {
	body, err := c.get(ctx, "api/recipes/"+recipeIDOrSlug, nil)
	if err != nil {
		return nil, err
	}
	var payload Recipe
	if err := decodeResponse("recipe", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ImportRecipe scrapes a recipe from an external URL and returns the stored
// result. The create endpoint answers with a bare JSON string slug which is
// immediately fetched back; there is no transactional guarantee between the
// two requests.
func (c *Client) ImportRecipe(ctx context.Context, recipeURL string, includeTags bool) (*Recipe, error) {
	data := map[string]any{
		"url":          recipeURL,
		"include_tags": includeTags,
	}
	body, err := c.post(ctx, c.createRecipePath(ctx), data)
	if err != nil {
		return nil, err
	}
	var slug string
	if err := decodeResponse("recipe slug", body, &slug); err != nil {
		return nil, err
	}
	return c.GetRecipe(ctx, slug)
}

// GetMealplanToday retrieves the mealplans scheduled for today.
func (c *Client) GetMealplanToday(ctx context.Context) ([]Mealplan, error) {
	body, err := c.get(ctx, c.versionedPath("mealplans/today"), nil)
	if err != nil {
		return nil, err
	}
	var payload []Mealplan
	if err := decodeResponse("today's mealplans", body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetMealplans retrieves mealplans, optionally bounded by start and end
// dates. Zero bounds are omitted from the query entirely. Pagination is
// disabled so the full range comes back in one response.
func (c *Client) GetMealplans(ctx context.Context, start, end time.Time) (*MealplanResponse, error) {
	params := url.Values{}
	if !start.IsZero() {
		params.Set("start_date", start.Format(dateLayout))
	}
	if !end.IsZero() {
		params.Set("end_date", end.Format(dateLayout))
	}
	params.Set("perPage", perPageAll)
	body, err := c.get(ctx, c.versionedPath("mealplans"), params)
	if err != nil {
		return nil, err
	}
	var payload MealplanResponse
	if err := decodeResponse("mealplans", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetShoppingLists retrieves all shopping lists, unpaged.
func (c *Client) GetShoppingLists(ctx context.Context) (*ShoppingListsResponse, error) {
	params := url.Values{}
	params.Set("perPage", perPageAll)
	body, err := c.get(ctx, c.versionedPath("shopping/lists"), params)
	if err != nil {
		return nil, err
	}
	var payload ShoppingListsResponse
	if err := decodeResponse("shopping lists", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetShoppingItems retrieves the items on one shopping list, filtered
// server-side and ordered by position ascending.
func (c *Client) GetShoppingItems(ctx context.Context, listID string) (*ShoppingItemsResponse, error) {
	params := url.Values{}
	params.Set("queryFilter", "shoppingListId="+listID)
	params.Set("orderBy", orderByPosition)
	params.Set("orderDirection", orderAscending)
	params.Set("perPage", perPageAll)
	body, err := c.get(ctx, c.versionedPath("shopping/items"), params)
	if err != nil {
		return nil, err
	}
	var payload ShoppingItemsResponse
	if err := decodeResponse("shopping items", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AddShoppingItem creates a shopping item from the fields set on item.
func (c *Client) AddShoppingItem(ctx context.Context, item MutateShoppingItem) error {
	_, err := c.post(ctx, c.versionedPath("shopping/items"), item)
	return err
}

// UpdateShoppingItem applies the fields set on item to an existing shopping
// item. Unset fields are left unchanged on the server.
func (c *Client) UpdateShoppingItem(ctx context.Context, itemID string, item MutateShoppingItem) error {
	_, err := c.put(ctx, c.versionedPath("shopping/items")+"/"+itemID, item)
	return err
}

// DeleteShoppingItem removes a shopping item.
func (c *Client) DeleteShoppingItem(ctx context.Context, itemID string) error {
	_, err := c.delete(ctx, c.versionedPath("shopping/items")+"/"+itemID)
	return err
}

// GetStatistics retrieves aggregate counts for the group or household.
func (c *Client) GetStatistics(ctx context.Context) (*Statistics, error) {
	body, err := c.get(ctx, c.versionedPath("statistics"), nil)
	if err != nil {
		return nil, err
	}
	var payload Statistics
	if err := decodeResponse("statistics", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// RandomMealplan asks the server to schedule a random recipe for the given
// date and entry type.
func (c *Client) RandomMealplan(ctx context.Context, day time.Time, entryType MealplanEntryType) (*Mealplan, error) {
	data := map[string]any{
		"date":      day.Format(dateLayout),
		"entryType": entryType,
	}
	body, err := c.post(ctx, c.versionedPath("mealplans/random"), data)
	if err != nil {
		return nil, err
	}
	var payload Mealplan
	if err := decodeResponse("mealplan", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MealplanEntry carries the optional fields for SetMealplan. Either RecipeID
// or NoteTitle identifies the entry content; NoteText is only sent when a
// title accompanies it.
type MealplanEntry struct {
	RecipeID  string
	NoteTitle string
	NoteText  string
}

// SetMealplan schedules a meal for the given date and entry type.
func (c *Client) SetMealplan(ctx context.Context, day time.Time, entryType MealplanEntryType, entry MealplanEntry) (*Mealplan, error) {
	data := map[string]any{
		"date":      day.Format(dateLayout),
		"entryType": entryType,
	}
	if entry.RecipeID != "" {
		data["recipeId"] = entry.RecipeID
	}
	if entry.NoteTitle != "" {
		data["title"] = entry.NoteTitle
		if entry.NoteText != "" {
			data["text"] = entry.NoteText
		}
	}
	body, err := c.post(ctx, c.versionedPath("mealplans"), data)
	if err != nil {
		return nil, err
	}
	var payload Mealplan
	if err := decodeResponse("mealplan", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func parseBaseURL(apiHost string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiHost)
	if trimmed == "" {
		return nil, fmt.Errorf("api host is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api host %q: %w", apiHost, err)
	}
	// The path is kept so deployments behind a subpath reverse proxy work;
	// query and fragment never belong in a base URL.
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
