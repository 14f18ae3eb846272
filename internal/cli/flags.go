package cli

import (
	"fmt"

	"github.com/tacogips/just-code/internal/args"
	"github.com/tacogips/just-code/internal/config"
	"github.com/tacogips/just-code/internal/runner"
)

// usageText is printed for -h/--help and when no arguments are given.
var usageText = fmt.Sprintf(`just-code: a minimalist hello-world generator

usage: just-code [%[1]s|%[2]s] [%[3]s|%[4]s] [%[5]s] ([re:]file_name)+
                 %[6]s [extra editor args]
       just-code %[7]s|%[8]s
       just-code %[9]s|%[10]s

Creates every file name given as argument from the template registered for its
extension in the configuration file, then opens your editor with all of the new
files. The editor is read from the $%[11]s environment variable.

Every occurrence of $file name$ in a template is replaced with the name of the
new file, written in the same case as the placeholder. Creating my_module.py:

  $file name$  becomes  my module
  $FILE_NAME$  becomes  MY_MODULE
  $FileName$   becomes  MyModule
  $fileName$   becomes  myModule
  $file-name$  becomes  my-module

Prefixing a file name with "re:" removes the extension from the created file:
"just-code re:hello.sh" creates and opens "hello", still using the sh template.

Arguments after %[6]s are passed to the editor before the file names. With
EDITOR=nvim, "just-code main.py module.py -- -O" runs "nvim -O main.py module.py".

Flags (recognized anywhere before %[6]s):
  %[1]s, %[2]s   create a git repository in the current directory
  %[3]s, %[4]s         do not open the editor
  %[5]s                 print debug logs to stderr
  %[9]s, %[10]s           print version information
  %[7]s, %[8]s              show this help

Configuration: %[12]s
  (override with $%[13]s). A default file is installed on first run.
  Executable extensions are listed under %[14]q.
`,
	args.FlagCreateRepoShort, args.FlagCreateRepo,
	args.FlagNoEditorShort, args.FlagNoEditor,
	args.FlagDebug,
	args.Separator,
	args.FlagHelpShort, args.FlagHelp,
	args.FlagVersionShort, args.FlagVersion,
	runner.EnvEditor,
	"$XDG_CONFIG_HOME/"+config.ConfigFileName,
	config.EnvConfigPath,
	config.ExecutableKey,
)
