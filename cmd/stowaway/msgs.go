package main

// Message constants
const (
	MsgRootShort = "Deploy your dotfiles with GNU Stow, safely"
	MsgRootLong  = `stowaway deploys a dotfiles tree into your home directory using GNU
Stow as the link-farm backend. Pre-existing files are moved into a
timestamped backup directory before any symlink is created, every run
writes an auditable log, and a failing pack never stops the rest.`

	MsgDeployShort = "Deploy pack(s) into the home directory"
	MsgDeployLong  = `Deploy discovers the packs under the dotfiles root, backs up any real
file sitting where a symlink belongs, and invokes stow once per pack.
Pack failures are isolated: the run continues and the summary lists
what succeeded and what did not. After deployment the post-deploy
installer steps run (plugin managers, prompt, default shell), each
best-effort.`
	MsgDeployExample = `  # Deploy every pack
  stowaway deploy

  # Deploy specific packs
  stowaway deploy zsh i3

  # Preview without touching anything
  stowaway deploy --dry-run

  # Skip the post-deploy installers
  stowaway deploy --no-installers`

	MsgListShort = "List the deployable packs"
	MsgDocsShort = "Show the quickstart guide"
)
