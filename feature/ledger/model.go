package ledger

import "time"

// Transfer is one row of the transfer ledger.
type Transfer struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Direction string    `gorm:"column:direction;size:16;index" json:"direction"`
	Bucket    string    `gorm:"column:bucket;size:63;index" json:"bucket"`
	Key       string    `gorm:"column:object_key;size:1024" json:"key"`
	LocalPath string    `gorm:"column:local_path;size:4096" json:"local_path"`
	Size      int64     `gorm:"column:size" json:"size"`
	ETag      string    `gorm:"column:etag;size:128" json:"etag,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName overrides the table name used by Transfer.
func (Transfer) TableName() string {
	return "artifact_transfers"
}
