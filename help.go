package doctext

import (
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

// Help generates an example environment block containing every
// setting of the service with its default value.
func Help() string {
	rt, _ := settings.GroupFromComponent(&runhttp.Component{})
	awsc, _ := settings.GroupFromComponent(&AWSComponent{})
	storage, _ := settings.GroupFromComponent(&StorageComponent{})
	upload, _ := settings.GroupFromComponent(&UploadComponent{})
	return settings.ExampleEnvGroups([]settings.Group{&settings.SettingGroup{
		NameValue:   "DOCTEXT",
		GroupValues: []settings.Group{rt, awsc, storage, upload},
	}})
}
