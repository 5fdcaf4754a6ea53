package assets

// Asset is one row of the assets table. The bucket key is the only
// cross-reference between the metadata store and the object store:
// once written it is never rewritten.
type Asset struct {
	AssetID   int64  `json:"assetid"`
	UserID    int64  `json:"userid"`
	AssetName string `json:"assetname"`
	BucketKey string `json:"bucketkey"`
}
