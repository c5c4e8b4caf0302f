package app

import "sitekit/internal/modkit/featureset"

// Feature identifiers known to the assembler
const (
	FeatureAuth      featureset.Feature = "auth"
	FeatureBlog      featureset.Feature = "blog"
	FeatureChat      featureset.Feature = "chat"
	FeatureDashboard featureset.Feature = "dashboard"
	FeatureMain      featureset.Feature = "main"
	FeatureContact   featureset.Feature = "contact"
	FeatureDatabase  featureset.Feature = "database"
)

// DependencyTable is the static feature dependency table
// declared dependency order is preserved by the resolver
func DependencyTable() featureset.Table {
	return featureset.Table{
		FeatureAuth:      {FeatureDatabase},
		FeatureBlog:      {FeatureAuth, FeatureDatabase},
		FeatureChat:      {FeatureDatabase},
		FeatureDashboard: {},
		FeatureMain:      {},
		FeatureContact:   {},
		FeatureDatabase:  {},
	}
}

// backendFeatures have no routes and are constructed before routed features
var backendFeatures = map[featureset.Feature]bool{
	FeatureDatabase: true,
}
