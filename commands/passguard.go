package commands

type PassGuardCommand struct {
	Check   CheckCommand   `command:"check" description:"Evaluate the strength of a password from a flag or STDIN"`
	Update  UpdateCommand  `command:"update" description:"Update passguard to the latest version"`
	Version VersionCommand `command:"version" description:"Displays passguard version" alias:"V"`
}

var PassGuard PassGuardCommand
