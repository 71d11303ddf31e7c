// Package spotify is a minimal Spotify Web API client covering what the
// collaborator harvest needs: client-credentials auth, an artist's album
// and single releases, and album track listings.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"golang.org/x/time/rate"
)

const (
	tokenURL = "https://accounts.spotify.com/api/token"
	baseURL  = "https://api.spotify.com/v1"

	pageSize = 50
	// MaxAlbumsPerArtist caps the releases fetched per artist.
	MaxAlbumsPerArtist = 300
)

type Client struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	limiter      *rate.Limiter
	token        string
}

// New returns a client. Requests are paced to stay under Spotify's
// rolling rate-limit window, which bans offenders without warning.
func New(clientID, clientSecret string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		limiter:      rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
	}
}

// Artist is a track or album credit.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Album is one album or single release.
type Album struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Track is one track with its artist credits.
type Track struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Artists []Artist `json:"artists"`
}

type statusError struct {
	code       int
	retryAfter time.Duration
}

func (e *statusError) Error() string {
	return fmt.Sprintf("spotify returned status %d", e.code)
}

// Authenticate obtains a bearer token via the client-credentials grant.
func (c *Client) Authenticate(ctx context.Context) error {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting token: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decoding token response: %w", err)
	}
	c.token = body.AccessToken
	return nil
}

// get performs a rate-limited GET with retries. 429 responses honor
// Retry-After; 5xx responses back off and retry; other failures are
// returned as-is.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return retry.Do(
		func() error {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}

			u := baseURL + path
			if len(params) > 0 {
				u += "?" + params.Encode()
			}
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
			if err != nil {
				return fmt.Errorf("building request: %w", err)
			}
			req.Header.Set("Authorization", "Bearer "+c.token)

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("requesting %s: %w", path, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusTooManyRequests {
				after := time.Second
				if v := resp.Header.Get("Retry-After"); v != "" {
					if secs, err := strconv.Atoi(v); err == nil {
						after = time.Duration(secs) * time.Second
					}
				}
				io.Copy(io.Discard, resp.Body)
				return &statusError{code: resp.StatusCode, retryAfter: after}
			}
			if resp.StatusCode >= 500 {
				io.Copy(io.Discard, resp.Body)
				return &statusError{code: resp.StatusCode}
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
			}

			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("decoding %s response: %w", path, err)
			}
			return nil
		},
		retry.RetryIf(func(err error) bool {
			serr, ok := err.(*statusError)
			return ok && (serr.code == http.StatusTooManyRequests || serr.code >= 500)
		}),
		retry.OnRetry(func(n uint, err error) {
			if serr, ok := err.(*statusError); ok && serr.retryAfter > 0 {
				fmt.Printf("Rate limited, sleeping for %s\n", serr.retryAfter)
				time.Sleep(serr.retryAfter)
			}
		}),
	)
}

// ArtistAlbums returns up to MaxAlbumsPerArtist album and single releases
// for an artist, deduplicated across pages. Compilations and appears-on
// releases are excluded.
func (c *Client) ArtistAlbums(ctx context.Context, artistID string) ([]Album, error) {
	var albums []Album
	seen := make(map[string]bool)
	offset := 0

	for {
		params := url.Values{
			"include_groups": {"album,single"},
			"limit":          {strconv.Itoa(pageSize)},
			"offset":         {strconv.Itoa(offset)},
			"market":         {"US"},
		}
		var page struct {
			Items []Album `json:"items"`
			Next  string  `json:"next"`
		}
		if err := c.get(ctx, "/artists/"+artistID+"/albums", params, &page); err != nil {
			return nil, fmt.Errorf("fetching albums for %s: %w", artistID, err)
		}
		if len(page.Items) == 0 {
			break
		}

		for _, album := range page.Items {
			if seen[album.ID] {
				continue
			}
			seen[album.ID] = true
			albums = append(albums, album)
			if len(albums) >= MaxAlbumsPerArtist {
				return albums, nil
			}
		}

		if page.Next == "" {
			break
		}
		offset += pageSize
	}
	return albums, nil
}

// AlbumTracks returns all tracks on an album, following pagination.
func (c *Client) AlbumTracks(ctx context.Context, albumID string) ([]Track, error) {
	var tracks []Track
	offset := 0

	for {
		params := url.Values{
			"limit":  {strconv.Itoa(pageSize)},
			"offset": {strconv.Itoa(offset)},
			"market": {"US"},
		}
		var page struct {
			Items []Track `json:"items"`
			Next  string  `json:"next"`
		}
		if err := c.get(ctx, "/albums/"+albumID+"/tracks", params, &page); err != nil {
			return nil, fmt.Errorf("fetching tracks for %s: %w", albumID, err)
		}
		if len(page.Items) == 0 {
			break
		}
		tracks = append(tracks, page.Items...)
		if page.Next == "" {
			break
		}
		offset += pageSize
	}
	return tracks, nil
}

// Collaborators returns the artists credited alongside the given artist
// across their releases, keyed by artist ID. Tracks that don't actually
// credit the artist (label samplers and the like) are skipped.
func (c *Client) Collaborators(ctx context.Context, artistID string) (map[string]string, error) {
	albums, err := c.ArtistAlbums(ctx, artistID)
	if err != nil {
		return nil, err
	}

	collaborators := make(map[string]string)
	for _, album := range albums {
		tracks, err := c.AlbumTracks(ctx, album.ID)
		if err != nil {
			return nil, err
		}
		for _, track := range tracks {
			credited := false
			for _, a := range track.Artists {
				if a.ID == artistID {
					credited = true
					break
				}
			}
			if !credited {
				continue
			}
			for _, a := range track.Artists {
				if a.ID == "" || a.ID == artistID {
					continue
				}
				collaborators[a.ID] = a.Name
			}
		}
	}
	return collaborators, nil
}
