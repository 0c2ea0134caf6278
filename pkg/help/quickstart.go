package help

const QuickstartYAML = `# polishpages Quick Start

corpus:
  phase_1: "20 categories x 4 title variations at Mumbai = 80 generic pages"
  phase_2: "34 priority-1/2 locations, 4/3 categories each in rotation = 70 local pages"
  total: 150

commands:
  generate: |
    polishpages generate
    polishpages generate --output dist --workers 4
    polishpages generate --dry-run --check-language

  validate: |
    polishpages validate                       # latest stored run
    polishpages validate --input dist/corpus.json
    polishpages validate --run <run_id>

  links: |
    polishpages links stats
    polishpages links orphans
    polishpages links cycles --summary
    polishpages links show /services/furniture-polishing-mumbai

  audit: |
    polishpages audit --top 20
    polishpages audit --fresh --strict

  db: |
    polishpages db runs
    polishpages db run <run_id>
    polishpages db pages --category teak-wood-polishing --fields url,title,in_links
    polishpages db orphans

output_files:
  - "dist/pages/<slug>.json (one record per page)"
  - "dist/corpus.json (all records in generation order)"
  - "dist/sitemap.xml"
  - "dist/robots.txt"
  - "dist/manifest.yaml (counts, link stats, keywords, validation)"

config:
  file: "polishpages.yaml (missing file means defaults)"
  env:
    - "POLISHPAGES_CONFIG"
    - "POLISHPAGES_SITE_ORIGIN"
    - "POLISHPAGES_DB"
    - "POLISHPAGES_OUTPUT_DIR"

corpus_invariants:
  - "Every URL is unique; collisions get a numeric suffix"
  - "Every page has between 3 and 12 related links"
  - "Related links never point at the page itself or outside the corpus"
  - "Same config = same pages, same order, same links"

error_behavior:
  - "Validation collects every error before failing"
  - "Exit codes: 0=success, 1=validation failed, 2=infrastructure error"
`
