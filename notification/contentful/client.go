package contentful

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/marcelsud/contentful-notifier/internal/httpclient"
	"github.com/marcelsud/contentful-notifier/notification"
)

// DefaultBaseURL is the Contentful Content Management API
const DefaultBaseURL = "https://api.contentful.com"

/* Management API implementation of notification.UserResolver
 * Every call carries the CMA token as a bearer token
 */

type Client struct {
	http    *httpclient.Client
	baseURL string
	token   string
}

// NewClient creates a management API client
func NewClient(hc *httpclient.Client, baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    hc,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
	}
}

type userLink struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
}

// entityResponse is the part of an entity we need
type entityResponse struct {
	Sys struct {
		UpdatedBy *userLink `json:"updatedBy"`
	} `json:"sys"`
}

type user struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// usersResponse is a management API collection of users
type usersResponse struct {
	Total int    `json:"total"`
	Items []user `json:"items"`
}

// UpdatedBy fetches the entity and returns sys.updatedBy.sys.id
func (c *Client) UpdatedBy(ctx context.Context, spaceID string, entityType notification.EntityType, entityID string) (string, error) {
	fragment, err := entityType.URLFragment()
	if err != nil {
		return "", fmt.Errorf("%w: %w", notification.ErrUpstream, err)
	}

	endpoint := fmt.Sprintf("%s/spaces/%s/%s/%s", c.baseURL, url.PathEscape(spaceID), fragment, url.PathEscape(entityID))

	var entity entityResponse
	if err := c.http.GetJSON(ctx, endpoint, c.authHeader(), &entity); err != nil {
		return "", fmt.Errorf("%w: fetching %s %s: %w", notification.ErrUpstream, entityType, entityID, err)
	}

	if entity.Sys.UpdatedBy == nil || entity.Sys.UpdatedBy.Sys.ID == "" {
		return "", fmt.Errorf("%w: %s %s has no sys.updatedBy", notification.ErrUpstream, entityType, entityID)
	}

	return entity.Sys.UpdatedBy.Sys.ID, nil
}

// DisplayName lists the users of the space and returns the one with userID
func (c *Client) DisplayName(ctx context.Context, spaceID, userID string) (notification.ResolvedUser, error) {
	endpoint := fmt.Sprintf("%s/spaces/%s/users/", c.baseURL, url.PathEscape(spaceID))

	var users usersResponse
	if err := c.http.GetJSON(ctx, endpoint, c.authHeader(), &users); err != nil {
		return notification.ResolvedUser{}, fmt.Errorf("%w: listing users of space %s: %w", notification.ErrUpstream, spaceID, err)
	}

	for _, u := range users.Items {
		if u.Sys.ID == userID {
			return notification.ResolvedUser{
				ID:          u.Sys.ID,
				DisplayName: u.FirstName + " " + u.LastName,
			}, nil
		}
	}

	return notification.ResolvedUser{}, fmt.Errorf("%w: %s in space %s", notification.ErrLookupMiss, userID, spaceID)
}

func (c *Client) authHeader() http.Header {
	return http.Header{"Authorization": {"Bearer " + c.token}}
}
