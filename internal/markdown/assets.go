package markdown

import (
	"regexp"
	"strings"
)

// AssetDir is the per-document directory holding images and attachments.
const AssetDir = "assets"

var relativeAsset = regexp.MustCompile(`(!?\[[^\]]*\]\()\./` + AssetDir + `/`)

// RewriteAssetLinks turns markdown images and links that point at
// ./assets/... into absolute references under prefix, which should be the
// document directory URL (without a trailing slash). Other links are left as
// they are.
func RewriteAssetLinks(body, prefix string) string {
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" || !strings.Contains(body, "./"+AssetDir+"/") {
		return body
	}
	replacement := "${1}" + strings.ReplaceAll(prefix, "$", "$$") + "/" + AssetDir + "/"
	return relativeAsset.ReplaceAllString(body, replacement)
}
