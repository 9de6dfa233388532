package testutil

import "github.com/arthur-debert/dotsync/pkg/types"

func optsDryRun() types.Options {
	return types.Options{DryRun: true}
}
