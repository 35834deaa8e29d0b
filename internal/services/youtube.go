package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"channelscope-backend/internal/models"
)

// channelIDPrefix is the prefix of every canonical YouTube channel ID.
const channelIDPrefix = "UC"

type YouTubeService struct {
	svc       *youtube.Service
	maxVideos int64
}

func NewYouTubeService(ctx context.Context, apiKey string, maxVideos int) (*YouTubeService, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &YouTubeService{
		svc:       svc,
		maxVideos: int64(maxVideos),
	}, nil
}

// SanitizeChannelInput normalizes a free-text channel reference (URL, handle,
// username or raw ID) into the value used for resolution. Normalizing an
// already canonical channel ID returns it unchanged.
func SanitizeChannelInput(input string) string {
	sanitized := strings.TrimSpace(input)

	if strings.Contains(sanitized, "youtube.com/") {
		parts := strings.Split(sanitized, "/")
		lastPart := parts[len(parts)-1]

		switch {
		case strings.Contains(sanitized, "/channel/"),
			strings.Contains(sanitized, "/user/"),
			strings.Contains(sanitized, "/c/"):
			return lastPart
		case strings.Contains(sanitized, "/@"):
			return strings.TrimPrefix(lastPart, "@")
		}
	}

	if isChannelID(sanitized) {
		return sanitized
	}

	if strings.HasPrefix(sanitized, "@") {
		return strings.TrimPrefix(sanitized, "@")
	}

	return sanitized
}

func isChannelID(s string) bool {
	return strings.HasPrefix(s, channelIDPrefix) && len(s) > 20
}

// FindChannel resolves a free-text input to a channel record. Literal IDs
// are fetched directly; anything else is tried as a username first and then
// as a keyword search returning the single best match. A NotFoundError means
// no path yielded a channel, as opposed to a transport failure.
func (s *YouTubeService) FindChannel(ctx context.Context, input string) (*models.Channel, error) {
	sanitized := SanitizeChannelInput(input)

	call := s.svc.Channels.List([]string{"snippet", "statistics"}).Context(ctx)
	if isChannelID(sanitized) {
		call = call.Id(sanitized)
	} else {
		call = call.ForUsername(sanitized)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, &UpstreamError{Op: "youtube: channel lookup", Err: err}
	}

	if len(resp.Items) == 0 {
		if isChannelID(sanitized) {
			return nil, &NotFoundError{Message: "Channel not found"}
		}
		return s.searchChannel(ctx, sanitized)
	}

	return mapChannel(resp.Items[0]), nil
}

// searchChannel falls back to a keyword search and re-fetches the best
// match's full record.
func (s *YouTubeService) searchChannel(ctx context.Context, keyword string) (*models.Channel, error) {
	searchResp, err := s.svc.Search.List([]string{"snippet"}).
		Q(keyword).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &UpstreamError{Op: "youtube: channel search", Err: err}
	}

	if len(searchResp.Items) == 0 || searchResp.Items[0].Id == nil || searchResp.Items[0].Id.ChannelId == "" {
		return nil, &NotFoundError{Message: "Channel not found"}
	}

	channelResp, err := s.svc.Channels.List([]string{"snippet", "statistics"}).
		Id(searchResp.Items[0].Id.ChannelId).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &UpstreamError{Op: "youtube: channel fetch", Err: err}
	}

	if len(channelResp.Items) == 0 {
		return nil, &NotFoundError{Message: "Channel not found"}
	}

	return mapChannel(channelResp.Items[0]), nil
}

// RecentUploads fetches the channel's most recent uploads via its uploads
// playlist, capped at the configured maximum. An empty result is not an
// error.
func (s *YouTubeService) RecentUploads(ctx context.Context, channelID string) ([]models.Video, error) {
	channelResp, err := s.svc.Channels.List([]string{"contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &UpstreamError{Op: "youtube: uploads playlist lookup", Err: err}
	}

	if len(channelResp.Items) == 0 {
		return []models.Video{}, nil
	}

	contentDetails := channelResp.Items[0].ContentDetails
	if contentDetails == nil || contentDetails.RelatedPlaylists == nil || contentDetails.RelatedPlaylists.Uploads == "" {
		return []models.Video{}, nil
	}

	playlistResp, err := s.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(contentDetails.RelatedPlaylists.Uploads).
		MaxResults(s.maxVideos).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &UpstreamError{Op: "youtube: playlist items", Err: err}
	}

	var videoIDs []string
	for _, item := range playlistResp.Items {
		if item.Snippet != nil && item.Snippet.ResourceId != nil && item.Snippet.ResourceId.VideoId != "" {
			videoIDs = append(videoIDs, item.Snippet.ResourceId.VideoId)
		}
	}

	if len(videoIDs) == 0 {
		return []models.Video{}, nil
	}

	videosResp, err := s.svc.Videos.List([]string{"snippet", "statistics"}).
		Id(strings.Join(videoIDs, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &UpstreamError{Op: "youtube: video details", Err: err}
	}

	videos := make([]models.Video, 0, len(videosResp.Items))
	for _, item := range videosResp.Items {
		video := models.Video{
			VideoID:   item.Id,
			ChannelID: channelID,
		}
		if item.Snippet != nil {
			video.Title = item.Snippet.Title
			video.Description = item.Snippet.Description
			video.PublishedAt = item.Snippet.PublishedAt
			video.ThumbnailURL = videoThumbnail(item.Snippet.Thumbnails)
		}
		if item.Statistics != nil {
			video.ViewCount = int64(item.Statistics.ViewCount)
			video.LikeCount = int64(item.Statistics.LikeCount)
			video.CommentCount = int64(item.Statistics.CommentCount)
		}
		videos = append(videos, video)
	}

	return videos, nil
}

func mapChannel(item *youtube.Channel) *models.Channel {
	channel := &models.Channel{
		ChannelID: item.Id,
	}

	if item.Snippet != nil {
		channel.Title = item.Snippet.Title
		channel.Description = item.Snippet.Description
		channel.CustomURL = item.Snippet.CustomUrl
		channel.ThumbnailURL = channelThumbnail(item.Snippet.Thumbnails)
		channel.JoinDate = formatJoinDate(item.Snippet.PublishedAt)
	}

	if item.Statistics != nil {
		channel.SubscriberCount = int64(item.Statistics.SubscriberCount)
		channel.VideoCount = int64(item.Statistics.VideoCount)
		channel.ViewCount = int64(item.Statistics.ViewCount)
	}

	return channel
}

// formatJoinDate turns the channel's RFC3339 creation time into the
// human-readable "Jan 2006" form shown in the channel header.
func formatJoinDate(publishedAt string) string {
	t, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2006")
}

func channelThumbnail(details *youtube.ThumbnailDetails) string {
	if details == nil {
		return ""
	}
	switch {
	case details.High != nil:
		return details.High.Url
	case details.Medium != nil:
		return details.Medium.Url
	case details.Default != nil:
		return details.Default.Url
	}
	return ""
}

func videoThumbnail(details *youtube.ThumbnailDetails) string {
	if details == nil {
		return ""
	}
	switch {
	case details.Medium != nil:
		return details.Medium.Url
	case details.Default != nil:
		return details.Default.Url
	}
	return ""
}
