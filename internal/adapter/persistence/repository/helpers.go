package repository

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dateLayout stores calendar dates so that lexical order matches date order.
const dateLayout = "2006-01-02"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTimestamp returns the zero time for missing or malformed values.
func parseTimestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// scanAll walks every page of a Scan and decodes each item into T.
func scanAll[T any](ctx context.Context, ddb dynamodb.ScanAPIClient, input *dynamodb.ScanInput) ([]T, error) {
	out := make([]T, 0)
	p := dynamodb.NewScanPaginator(ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := decodeItems[T](page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// queryAll walks every page of a Query and decodes each item into T.
func queryAll[T any](ctx context.Context, ddb dynamodb.QueryAPIClient, input *dynamodb.QueryInput) ([]T, error) {
	out := make([]T, 0)
	p := dynamodb.NewQueryPaginator(ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := decodeItems[T](page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func decodeItems[T any](raw []map[string]types.AttributeValue) ([]T, error) {
	items := make([]T, 0, len(raw))
	for _, r := range raw {
		var it T
		if err := attributevalue.UnmarshalMap(r, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
