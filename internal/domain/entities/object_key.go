package entities

import (
	"fmt"
	"path"
	"strings"
	"time"
)

type FileCategory string

const (
	FileCategoryClient    FileCategory = "client-files"
	FileCategoryDelivered FileCategory = "delivered-files"
	FileCategoryChat      FileCategory = "chat-files"
)

// ObjectKey builds "{category}/{orderId}/{unixMillis}_{filename}".
func ObjectKey(category FileCategory, orderID, fileName string, now time.Time) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(fileName), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("%s/%s/%d_%s", category, orderID, now.UnixMilli(), name)
}
