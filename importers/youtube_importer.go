package importers

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/wybiral/ytdetails/lookup"
	"github.com/wybiral/ytdetails/media"
)

// YoutubeImporter looks up video snippets with the YouTube Data API.
type YoutubeImporter struct {
	Client *youtube.Service
}

// NewYoutubeImporter creates an importer authenticated with apiKey. A non
// empty endpoint replaces the default API base URL.
func NewYoutubeImporter(ctx context.Context, apiKey, endpoint string) (*YoutubeImporter, error) {
	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	client, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating youtube service: %w", err)
	}
	return &YoutubeImporter{Client: client}, nil
}

// FetchVideo returns the snippet of the video id.
func (i *YoutubeImporter) FetchVideo(ctx context.Context, id lookup.VideoID) (media.Video, error) {
	log.Debugf("videos.list %s", id)

	resp, err := i.Client.Videos.
		List([]string{"snippet"}).
		Id(string(id)).
		Context(ctx).
		Do()
	if err != nil {
		return media.Video{}, fmt.Errorf("error retrieving youtube video info: %w", err)
	}
	if len(resp.Items) == 0 {
		return media.Video{}, ErrVideoNotFound
	}

	item := resp.Items[0]
	if item.Snippet == nil {
		return media.Video{}, fmt.Errorf("video %s has no snippet: %w", id, ErrMalformedResponse)
	}

	v := media.Video{
		ID:           item.Id,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ThumbnailURL: pickThumbnail(item.Snippet.Thumbnails),
		PublishedAt:  item.Snippet.PublishedAt,
	}
	if v.ID == "" {
		v.ID = string(id)
	}
	return v, nil
}

func pickThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	variants := map[string]*youtube.Thumbnail{
		"default":  t.Default,
		"medium":   t.Medium,
		"high":     t.High,
		"standard": t.Standard,
		"maxres":   t.Maxres,
	}
	for _, name := range ThumbnailPreference {
		if th := variants[name]; th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
