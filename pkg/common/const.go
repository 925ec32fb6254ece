package common

import "fmt"

const (
	HeaderUserID    = "user-id"
	HeaderRequestID = "X-Request-ID"

	KeyStatisticsReport = "STATISTICS_REPORT:%d"
)

func StatisticsReportKey(accountID uint) string {
	return fmt.Sprintf(KeyStatisticsReport, accountID)
}
