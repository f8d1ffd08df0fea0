package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

func TestListCmd_HasLimitFlag(t *testing.T) {
	flag := listCmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "20", flag.DefValue)
}

func TestListCmd_PrintsDocuments(t *testing.T) {
	svc := &mockExportService{page: &domain.DocumentPage{
		Items: []domain.DocumentRef{
			{ID: "a1", Name: "Alpha", ModifiedTime: "2024-06-01T08:00:00Z"},
			{ID: "b2", Name: "Beta"},
		},
		NextPageToken: "tok-2",
	}}
	setupTestApp(t, svc)

	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "a1  Alpha")
	assert.Contains(t, out, "Modified: 2024-06-01T08:00:00Z")
	assert.Contains(t, out, "b2  Beta")
	assert.Contains(t, out, "--page-token tok-2")
	assert.Equal(t, domain.ListOptions{PageSize: 20}, svc.listOpts)
}

func TestListCmd_BuildsQuery(t *testing.T) {
	svc := &mockExportService{page: &domain.DocumentPage{}}
	setupTestApp(t, svc)

	out, err := execute(t, "list", "starred = true", "--name", "Bob's", "-n", "5", "--page-token", "p")
	require.NoError(t, err)

	assert.Contains(t, out, "No documents found.")
	assert.Equal(t, domain.ListOptions{
		Query:     `starred = true and name contains 'Bob\'s'`,
		PageSize:  5,
		PageToken: "p",
	}, svc.listOpts)
}

func TestListCmd_JSON(t *testing.T) {
	svc := &mockExportService{page: &domain.DocumentPage{
		Items: []domain.DocumentRef{{ID: "a1", Name: "Alpha"}},
	}}
	setupTestApp(t, svc)

	out, err := execute(t, "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"ID": "a1"`)
}

func TestListCmd_Error(t *testing.T) {
	setupTestApp(t, &mockExportService{err: errors.New("quota exceeded")})

	_, err := execute(t, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestNameClause(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "plan", want: "name contains 'plan'"},
		{name: "quote", in: "it's", want: `name contains 'it\'s'`},
		{name: "backslash", in: `a\b`, want: `name contains 'a\\b'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nameClause(tt.in))
		})
	}
}
