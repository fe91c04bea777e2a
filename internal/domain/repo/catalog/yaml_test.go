package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshift-assisted/cluster-resources/internal/domain/repo/catalog"
)

func TestLoadCatalogFile(t *testing.T) {
	c, err := catalog.NewYAMLCatalogFromFile("testdata/catalog.yaml")
	require.NoError(t, err)

	services, err := c.GetStackServices(context.TODO())
	require.NoError(t, err)
	require.Len(t, services, 2)

	hdfs := services[0]
	assert.Equal(t, "HDP", hdfs.StackName)
	assert.Equal(t, "2.0.6", hdfs.StackVersion)
	assert.Equal(t, "HDFS", hdfs.Name)
	assert.Equal(t, []string{"ZOOKEEPER"}, hdfs.RequiredServices)
	assert.Equal(t, map[string]string{"P1": "V1", "P2": "V2"}, hdfs.Properties)
	assert.Nil(t, hdfs.CredentialStoreSupported)

	zookeeper := services[1]
	require.NotNil(t, zookeeper.CredentialStoreSupported)
	assert.True(t, *zookeeper.CredentialStoreSupported)

	components, err := c.GetStackServiceComponents(context.TODO())
	require.NoError(t, err)
	require.Len(t, components, 4)

	assert.Equal(t, "NAMENODE", components[0].Name)
	assert.Equal(t, "HDFS", components[0].ServiceName)
	assert.Equal(t, "2.0.6", components[0].StackVersion)
	assert.Equal(t, []string{"DECOMMISSION", "REBALANCEHDFS"}, components[0].CustomCommands)
}

func TestLoadInvalidCatalog(t *testing.T) {
	type testCase struct {
		name     string
		document string
		valid    bool
	}

	cases := []testCase{
		{
			name:  "empty document",
			valid: true,
		},
		{
			name:     "unknown field",
			document: "stacks:\n  - name: HDP\n    colour: blue\n",
		},
		{
			name:     "missing service name",
			document: "stacks:\n  - name: HDP\n    version: '1'\n    services:\n      - displayName: x\n",
		},
		{
			name:     "duplicate service",
			document: "stacks:\n  - name: HDP\n    version: '1'\n    services:\n      - name: HDFS\n      - name: HDFS\n",
		},
		{
			name:     "same service in two stack versions",
			document: "stacks:\n  - name: HDP\n    version: '1'\n    services:\n      - name: HDFS\n  - name: HDP\n    version: '2'\n    services:\n      - name: HDFS\n",
			valid:    true,
		},
		{
			name:     "not yaml",
			document: "stacks: [",
		},
	}

	for i := range cases {
		c := cases[i]

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := catalog.NewYAMLCatalog(strings.NewReader(c.document))
			assert.Equal(t, c.valid, err == nil, err)
		})
	}
}

func TestMissingCatalogFile(t *testing.T) {
	_, err := catalog.NewYAMLCatalogFromFile("testdata/missing.yaml")
	assert.Error(t, err)
}
