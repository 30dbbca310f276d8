package models

import "time"

// Video is a user-submitted video reference. The id is assigned by the store in
// strictly increasing order and is never reused; on the wire it is rendered as an
// opaque string. Published is forced true at creation and there is no unpublish.
type Video struct {
	ID           int64     `json:"id,string"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
}
