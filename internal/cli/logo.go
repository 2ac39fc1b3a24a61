package cli

const asciiLogo = `
    _____  ____  ____  __    ____
   /  _  |/ __ \/ __ \/ /   / __ \
  /  /_| / /_/ / /_/ / /   / / / /
 /  __  / ____/\____/ /___/ /_/ /
/__/  |_/_/         \____/\____/
`
