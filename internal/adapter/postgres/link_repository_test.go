package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/port"
)

func TestLinkWhere(t *testing.T) {
	where, args := linkWhere(port.LinkQuery{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = linkWhere(port.LinkQuery{Campaign: "camp", Medium: "grupos", LinkType: domain.LinkVendas})
	assert.Equal(t, " WHERE utm_campaign = $1 AND utm_medium = $2 AND link_type = $3", where)
	assert.Equal(t, []any{"camp", "grupos", "vendas"}, args)
}

func TestTableFor(t *testing.T) {
	table, err := tableFor(domain.KindLaunchTypes)
	assert.NoError(t, err)
	assert.Equal(t, "launch_types", table)

	_, err = tableFor("colors")
	assert.Error(t, err)
}
